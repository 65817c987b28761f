package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSections_DegeneratePartitionCollapses(t *testing.T) {
	// Widgets without naming discipline all land in "general"; forcing a
	// multi-section layout would mislead the rendering layer.
	fields := []ParsedFormField{
		{FieldName: "general_fullName", Section: "general", Position: 1},
		{FieldName: "general_companyEmail", Section: "general", Position: 2},
		{FieldName: "general_comments", Section: "general", Position: 3},
	}

	sections := assembleSections(fields)

	require.Len(t, sections, 1)
	assert.Equal(t, "Form Fields", sections[0].Title)
	assert.Equal(t, 1, sections[0].Order)
	assert.Equal(t, fields, sections[0].Fields)
}

func TestAssembleSections_SingleNamedBucketAlsoCollapses(t *testing.T) {
	fields := []ParsedFormField{
		{FieldName: "owner_first", Section: "owner", Position: 1},
		{FieldName: "owner_last", Section: "owner", Position: 2},
	}

	sections := assembleSections(fields)

	require.Len(t, sections, 1)
	assert.Equal(t, "Form Fields", sections[0].Title)
}

func TestAssembleSections_MultiSectionPartition(t *testing.T) {
	fields := []ParsedFormField{
		{FieldName: "owner_first", Section: "owner", Position: 1},
		{FieldName: "banking_routing", Section: "banking", Position: 2},
		{FieldName: "owner_last", Section: "owner", Position: 3},
		{FieldName: "banking_account", Section: "banking", Position: 4},
	}

	sections := assembleSections(fields)

	require.Len(t, sections, 2)

	assert.Equal(t, "Owner", sections[0].Title)
	assert.Equal(t, 1, sections[0].Order)
	require.Len(t, sections[0].Fields, 2)
	assert.Equal(t, 1, sections[0].Fields[0].Position)
	assert.Equal(t, 3, sections[0].Fields[1].Position)

	assert.Equal(t, "Banking", sections[1].Title)
	assert.Equal(t, 2, sections[1].Order)
	require.Len(t, sections[1].Fields, 2)
	assert.Equal(t, 2, sections[1].Fields[0].Position)
	assert.Equal(t, 4, sections[1].Fields[1].Position)
}

func TestAssembleSections_OrderFollowsFirstSeen(t *testing.T) {
	fields := []ParsedFormField{
		{FieldName: "zeta_a", Section: "zeta", Position: 1},
		{FieldName: "alpha_b", Section: "alpha", Position: 2},
		{FieldName: "mid_c", Section: "mid", Position: 3},
	}

	sections := assembleSections(fields)

	require.Len(t, sections, 3)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, []string{
		sections[0].Title, sections[1].Title, sections[2].Title,
	})
	for i, s := range sections {
		assert.Equal(t, i+1, s.Order)
	}
}

func TestAssembleSections_Empty(t *testing.T) {
	assert.Empty(t, assembleSections(nil))
}
