package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

func TestParseTraits(t *testing.T) {
	cat := catalog.Default()

	got, err := parseTraits(cat, []string{"Eyes=Laser Eyes", " Accessory = Crown "})
	require.NoError(t, err)
	assert.Equal(t, lobster.Traits{lobster.CategoryEyes: "Laser Eyes", lobster.CategoryAccessory: "Crown"}, got)

	_, err = parseTraits(cat, []string{"Eyes"})
	assert.ErrorContains(t, err, "Category=Option")

	_, err = parseTraits(cat, []string{"Hat=Crown"})
	assert.ErrorContains(t, err, "unknown category")

	_, err = parseTraits(cat, []string{"Eyes=Monocle"})
	assert.ErrorContains(t, err, "Laser Eyes")
}

func TestDescribePayload(t *testing.T) {
	assert.Equal(t, "crown (head)", describePayload(lobster.Payload{Style: "crown", Family: lobster.FamilyHead}))
	assert.Equal(t, "googly", describePayload(lobster.Payload{Style: "googly"}))
	assert.Equal(t, "x1.7", describePayload(lobster.Payload{Scale: 1.7}))
	assert.Equal(t, "#dc5046", describePayload(lobster.Payload{Color: lobster.RGB(220, 80, 70)}))
}
