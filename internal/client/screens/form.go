package screens

import (
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/validation"
)

// Region identifies an addressable text node on a screen.
type Region string

const (
	RegionErrorUsername Region = "errorUsername"
	RegionErrorEmail    Region = "errorEmail"
	RegionErrorMobile   Region = "errorMobile"
	RegionErrorPassword Region = "errorPassword"
	RegionCommonError   Region = "commonError"
	RegionHomeText      Region = "homeText"
)

var fieldRegions = map[validation.Field]Region{
	validation.FieldUsername: RegionErrorUsername,
	validation.FieldEmail:    RegionErrorEmail,
	validation.FieldMobile:   RegionErrorMobile,
	validation.FieldPassword: RegionErrorPassword,
	validation.FieldCommon:   RegionCommonError,
}

// RegionFor returns the error region that displays f.
func RegionFor(f validation.Field) Region {
	return fieldRegions[f]
}

// Input describes one text field of a form.
type Input struct {
	Field       validation.Field
	Placeholder string
	Secret      bool
}

// form is the state shared by the login and registration screens.
type form struct {
	mu      sync.Mutex
	inputs  []Input
	values  map[validation.Field]string
	regions map[Region]string
}

func newForm(inputs ...Input) *form {
	return &form{
		inputs:  inputs,
		values:  make(map[validation.Field]string, len(inputs)),
		regions: make(map[Region]string),
	}
}

// Inputs lists the form fields in display order.
func (f *form) Inputs() []Input {
	return append([]Input(nil), f.inputs...)
}

// Set changes the value of field. Unknown fields are ignored.
func (f *form) Set(field validation.Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		if in.Field == field {
			f.values[field] = value
			return
		}
	}
}

// Value returns the current value of field.
func (f *form) Value(field validation.Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Region returns the text of id and whether it is shown.
func (f *form) Region(id Region) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	text, ok := f.regions[id]
	return text, ok
}

// Regions returns every shown region.
func (f *form) Regions() map[Region]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[Region]string, len(f.regions))
	for k, v := range f.regions {
		out[k] = v
	}
	return out
}

// begin clears all regions and returns a copy of the current values.
func (f *form) begin() map[validation.Field]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.regions)
	out := make(map[validation.Field]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *form) show(id Region, text string) {
	if text == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regions[id] = text
}

func (f *form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		f.values[in.Field] = ""
	}
}
