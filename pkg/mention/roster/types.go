// ABOUTME: Wire types for roster files and attachment reports
// ABOUTME: Separated for easyjson codegen; the YAML reader shares the same structs

//go:generate easyjson -all types.go

package roster

// rosterFile is the on-disk roster layout.
type rosterFile struct {
	Candidates []entry `json:"candidates" yaml:"candidates"`
}

type entry struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Secondary   string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// report is one line written by JSONLines.
type report struct {
	Seq         int     `json:"seq"`
	Attachments []entry `json:"attachments"`
}
