package gridtable

import "strings"

type Option int

const (
	// OptionOmitHeaderRow renders the table without the header row.
	OptionOmitHeaderRow Option = 1 << iota

	// OptionOmitFooter renders the table without the record count footer.
	OptionOmitFooter

	// OptionExpandAll renders every grouped row expanded,
	// independent of the widget's expand/collapse state.
	OptionExpandAll
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionOmitHeaderRow) {
		b.WriteString("OmitHeaderRow")
	}
	if o.Has(OptionOmitFooter) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("OmitFooter")
	}
	if o.Has(OptionExpandAll) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("ExpandAll")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

func HasOption(options []Option, option Option) bool {
	for _, o := range options {
		if o.Has(option) {
			return true
		}
	}
	return false
}
