// Package prompts builds the system and user prompts for the generator and
// fixer agents. Design-token values are always interpolated into the SYSTEM
// role so they act as constraints the model cannot be talked out of, and the
// fixer prompt is a pure function of the failing sections plus the verbatim
// validator error strings.
package prompts

import (
	"fmt"
	"strings"

	"github.com/pranavyk10/guided-component-architect/internal/component"
	"github.com/pranavyk10/guided-component-architect/internal/tokens"
)

const generatorSystemTemplate = `You are an Angular component code generator.
Output ONLY raw code in EXACTLY this format - no markdown, no backticks, no explanations:

=== %[1]s.component.ts ===
<raw TypeScript code>

=== %[1]s.component.html ===
<raw HTML template>

=== %[1]s.component.css ===
<raw CSS styles>

MANDATORY RULES:
1. No explanation. No text outside the three sections.
2. The TypeScript MUST contain:
     @Component decorator
     export class %[2]s
     selector: '%[3]s'
     templateUrl: './%[1]s.component.html'
     styleUrls: ['./%[1]s.component.css']
3. Use EXACTLY these design token values (copy verbatim), and no other hex colors or fonts:
%[4]s
4. The CSS MUST contain a .card rule with EXACTLY:
     font-family: %[5]s, sans-serif;
     border-radius: %[6]s;
     padding: %[7]s;
     box-shadow: %[8]s;
5. The primary button MUST use the primary color both inline:
     style="background-color:%[9]s"
   and in CSS:
     .btn-primary { background-color: %[9]s; }
6. All {}, (), [] must be balanced and every HTML tag must be closed.`

// GeneratorSystem renders the generator system prompt for one component.
func GeneratorSystem(set tokens.Set, naming component.Naming) string {
	return fmt.Sprintf(generatorSystemTemplate,
		naming.Stem,
		naming.ClassName,
		naming.Selector(),
		indent(set.JSON(), "     "),
		set.FontFamily(),
		set.BorderRadius(),
		set.CardPadding(),
		set.CardShadow(),
		set.PrimaryColor(),
	)
}

// GeneratorUser renders the user message carrying the sanitized description.
func GeneratorUser(description string) string {
	return fmt.Sprintf(
		"Generate the Angular component for: %q\n\nOutput raw code only. Exactly 3 sections. No markdown. No explanation.",
		description,
	)
}

const fixerSystem = `You are an Angular component repair agent.
You receive broken Angular component code and a list of validation errors.
Your ONLY job is to fix the listed errors.
Do NOT redesign the UI. Do NOT change component behavior.
Do NOT change the component name or selector.
Return the corrected files in EXACTLY the same 3-section format - no markdown, no backticks, no explanations.`

// FixerSystem returns the fixer system prompt.
func FixerSystem() string {
	return fixerSystem
}

const fixerUserTemplate = `Design System Tokens (enforced - do not deviate):
%s

Component naming:
- selector: %s
- class name: %s

=== PREVIOUS %[4]s.component.ts ===
%[5]s

=== PREVIOUS %[4]s.component.html ===
%[6]s

=== PREVIOUS %[4]s.component.css ===
%[7]s

=== VALIDATION ERRORS TO FIX ===
%[8]s

Fix ONLY the above errors. Keep all UI structure and behavior intact.
Return the full corrected component as:

=== %[4]s.component.ts ===
=== %[4]s.component.html ===
=== %[4]s.component.css ===`

// FixerUser renders the correction prompt from the failing source and the
// exact validator error sequence. Given identical inputs it always produces
// the identical prompt, so the fix request is reproducible from a
// ValidationError list alone.
func FixerUser(src component.Source, errs []component.ValidationError, set tokens.Set, naming component.Naming) string {
	return fmt.Sprintf(fixerUserTemplate,
		set.JSON(),
		naming.Selector(),
		naming.ClassName,
		naming.Stem,
		src.TS,
		src.HTML,
		src.CSS,
		strings.Join(component.Messages(errs), "\n"),
	)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
