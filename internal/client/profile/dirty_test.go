package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func formValues() map[string]string {
	return map[string]string{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"countryCode":     "+44",
		"mobileNumber":    "7700900000",
		"currentCompany":  "Analytical Engines",
		"experienceYears": "12",
		"education":       "Mathematics",
		"skills":          "Go, analysis",
	}
}

func TestIsDirty_CleanAgainstItself(t *testing.T) {
	snap := Capture(formValues())

	assert.False(t, IsDirty(formValues(), snap, false))
}

func TestIsDirty_AnySingleFieldChange(t *testing.T) {
	snap := Capture(formValues())

	for field := range formValues() {
		current := formValues()
		current[field] = current[field] + "!"

		assert.True(t, IsDirty(current, snap, false), "changing %q must flag dirty", field)
	}
}

func TestIsDirty_FileSelection(t *testing.T) {
	snap := Capture(formValues())

	assert.True(t, IsDirty(formValues(), snap, true), "selecting a file must flag dirty")
}

func TestIsDirty_AbsentEqualsEmpty(t *testing.T) {
	snap := Capture(map[string]string{"firstName": "Ada", "skills": ""})

	// A field absent from the form compares equal to an empty snapshot
	// value.
	assert.False(t, IsDirty(map[string]string{"firstName": "Ada"}, snap, false))

	// But an absent field with a non-empty baseline is a change.
	snap = Capture(map[string]string{"firstName": "Ada", "skills": "Go"})
	assert.True(t, IsDirty(map[string]string{"firstName": "Ada"}, snap, false))
}

func TestIsDirty_NewFieldAppears(t *testing.T) {
	snap := Capture(map[string]string{"firstName": "Ada"})

	assert.True(t, IsDirty(map[string]string{"firstName": "Ada", "skills": "Go"}, snap, false))
	assert.False(t, IsDirty(map[string]string{"firstName": "Ada", "skills": ""}, snap, false))
}

func TestCapture_CopiesInput(t *testing.T) {
	values := formValues()
	snap := Capture(values)

	values["firstName"] = "changed"

	assert.Equal(t, "Ada", snap["firstName"], "snapshot must not alias the live form map")
}
