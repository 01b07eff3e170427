package entry_service

// importPlan is the full set of intended mutations for one import,
// computed against a snapshot of existing entry numbers before any
// write happens. Applying it inside the same transaction that took the
// snapshot keeps the (prize_id, entry_number) uniqueness check and the
// writes under one isolation scope.
type importPlan struct {
	inserts []entryRecord
	updates []entryRecord
	skipped int
}

func buildImportPlan(
	records []entryRecord,
	existing map[string]bool,
	policy ConflictPolicy,
) importPlan {
	var plan importPlan
	for _, record := range records {
		if !existing[record.entryNumber] {
			plan.inserts = append(plan.inserts, record)
			continue
		}
		switch policy {
		case PolicyOverwrite:
			plan.updates = append(plan.updates, record)
		default: // PolicyIgnore
			plan.skipped++
		}
	}
	return plan
}
