package component

// Naming carries the identity of one generated component: the kebab-case
// file stem and the PascalCase Angular class name derived from the user's
// description.
type Naming struct {
	Stem      string `json:"stem"`      // e.g. "login-card"
	ClassName string `json:"className"` // e.g. "LoginCardComponent"
}

// Selector is the Angular selector for the component, e.g. "app-login-card".
func (n Naming) Selector() string {
	return "app-" + n.Stem
}

// FileName returns the on-disk name for one section, e.g.
// "login-card.component.ts".
func (n Naming) FileName(ext string) string {
	return n.Stem + ".component." + ext
}
