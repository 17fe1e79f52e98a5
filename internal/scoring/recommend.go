package scoring

// Recommend derives advisory guidance from normalized scores and the
// integrity report. Output order is fixed; when no trigger fires the result
// is empty.
func Recommend(n NormalizedScore, r Report) []string {
	var recs []string

	if n.Dimensions.Affective < 2.5 {
		recs = append(recs, "Low affective commitment: candidate may not identify emotionally with the organization")
	}

	if n.Dimensions.Normative < 2.5 {
		recs = append(recs, "Low normative commitment: candidate may not feel a moral obligation to stay")
	}

	if n.Dimensions.Continuance > 4.0 && n.Dimensions.Affective < 3.0 {
		recs = append(recs, "ALERT: commitment driven by exit costs alone - turnover risk if a better opportunity appears")
	}

	if len(r.Findings) > 3 {
		recs = append(recs, "High inconsistency count: an additional interview is recommended for validation")
	}

	return recs
}
