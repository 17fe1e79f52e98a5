package scoring

import (
	"strings"

	"commitscale/internal/model"
)

// LegacyDimensionTable maps question ids from the pre-existing question bank
// to their dimension. Constructed once at startup and passed by reference.
type LegacyDimensionTable map[string]model.Dimension

// DefaultLegacyTable returns the dimension assignments of the original
// question bank, kept for backward compatibility with tests generated
// before questions carried explicit dimension metadata.
func DefaultLegacyTable() LegacyDimensionTable {
	return LegacyDimensionTable{
		"efb51db2-4a0b-4e08-8047-68872a833608": model.DimensionNormative,
		"4e3a14d1-c726-4f9d-a7e5-7204c895f521": model.DimensionNormative,
		"0256d0e5-d11f-4e66-9132-f572abc215a4": model.DimensionContinuance,
		"c9bf4b18-3873-4a1a-bda4-868cc3f7679a": model.DimensionAffective,
		"467cb925-de6f-4d09-ad22-9519ac0289ed": model.DimensionContinuance,
		"866f28c4-df31-4139-af78-3d1170f8ff3a": model.DimensionContinuance,
		"db558d9a-38c7-4bee-8c5f-1224bd03e68b": model.DimensionAffective,
		"af636672-fa7f-4fbb-adfc-1b123df456e1": model.DimensionAffective,
		"6b9f73fd-8fc7-4fef-ad34-1a7de606f06b": model.DimensionContinuance,
		"be99ee9e-3e83-40af-95fa-8a591ef5b022": model.DimensionNormative,
		"69568e39-3d20-41c8-823f-00a500b92d02": model.DimensionNormative,
		"d0f00dab-8971-438d-acd3-07d3c3129259": model.DimensionAffective,
	}
}

// Mapper resolves which commitment dimension a question belongs to
type Mapper struct {
	legacy LegacyDimensionTable
}

// NewMapper creates a mapper backed by the given legacy table
func NewMapper(legacy LegacyDimensionTable) *Mapper {
	return &Mapper{legacy: legacy}
}

// Dimension resolves a question's dimension: explicit metadata first, then
// the first dimension-named tag, then the legacy id table. ok is false when
// the question resolves to no known dimension; such questions still count
// toward the grand total.
func (m *Mapper) Dimension(q *model.Question) (model.Dimension, bool) {
	if q.Dimension != "" {
		return q.Dimension, knownDimension(q.Dimension)
	}
	for _, tag := range q.Tags {
		d := model.Dimension(strings.ToLower(tag))
		if knownDimension(d) {
			return d, true
		}
	}
	if d, ok := m.legacy[q.ID]; ok {
		return d, true
	}
	return "", false
}

func knownDimension(d model.Dimension) bool {
	switch d {
	case model.DimensionAffective, model.DimensionNormative, model.DimensionContinuance:
		return true
	}
	return false
}
