package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const markerOutput = `=== login.component.ts ===
import { Component } from '@angular/core';

@Component({
  selector: 'app-login',
  templateUrl: './login.component.html',
  styleUrls: ['./login.component.css'],
})
export class LoginComponent {}

=== login.component.html ===
<div class="card">
  <button class="btn-primary">Sign in</button>
</div>

=== login.component.css ===
.card {
  font-family: Inter, sans-serif;
}
`

func TestParseSections_Markers(t *testing.T) {
	src := ParseSections(markerOutput)

	assert.Contains(t, src.TS, "export class LoginComponent")
	assert.Contains(t, src.HTML, `<button class="btn-primary">`)
	assert.Contains(t, src.CSS, "font-family: Inter")
	assert.NotContains(t, src.TS, "===")
}

func TestParseSections_MarkersWithoutStem(t *testing.T) {
	raw := "=== component.ts ===\nexport class X {}\n=== component.html ===\n<p>hi</p>\n=== component.css ===\np { margin: 0; }\n"
	src := ParseSections(raw)

	assert.Equal(t, "export class X {}", src.TS)
	assert.Equal(t, "<p>hi</p>", src.HTML)
	assert.Equal(t, "p { margin: 0; }", src.CSS)
}

func TestParseSections_MarkerCaseInsensitive(t *testing.T) {
	raw := "=== LOGIN.COMPONENT.TS ===\nexport class X {}\n"
	src := ParseSections(raw)
	assert.Equal(t, "export class X {}", src.TS)
}

func TestParseSections_StripsResidualFences(t *testing.T) {
	raw := "=== login.component.css ===\n```css\n.card { color: #fff; }\n```\n"
	src := ParseSections(raw)
	assert.Equal(t, ".card { color: #fff; }", src.CSS)
}

func TestParseSections_FencedFallback(t *testing.T) {
	raw := "Here is your component:\n" +
		"```typescript\nexport class X {}\n```\n" +
		"```html\n<p>hi</p>\n```\n" +
		"```css\np { margin: 0; }\n```\n"
	src := ParseSections(raw)

	assert.Equal(t, "export class X {}", src.TS)
	assert.Equal(t, "<p>hi</p>", src.HTML)
	assert.Equal(t, "p { margin: 0; }", src.CSS)
}

func TestParseSections_MissingSectionIsEmpty(t *testing.T) {
	raw := "=== login.component.ts ===\nexport class X {}\n"
	src := ParseSections(raw)

	assert.NotEmpty(t, src.TS)
	assert.Empty(t, src.HTML)
	assert.Empty(t, src.CSS)
}

func TestParseSections_GarbageYieldsEmptySource(t *testing.T) {
	src := ParseSections("sorry, I could not generate the component")
	assert.True(t, src.Empty())
}

func TestParseSections_Deterministic(t *testing.T) {
	a := ParseSections(markerOutput)
	b := ParseSections(markerOutput)
	assert.Equal(t, a, b)
}
