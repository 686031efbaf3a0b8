package schedule

// AssembleRecord combines a joined pair with the live context into one
// record. A pair whose finish precedes its start signals a bad join and is
// rejected rather than emitted. A package summary row updates the context
// BEFORE its own record is stamped, so the record carries its own code and
// every later row inherits it.
func AssembleRecord(ctx *Context, pair Pair, page, totalPages int) (Record, bool) {
	start := pair.Dates.Start()
	finish := pair.Dates.Finish()
	if finish.Date.Before(start.Date) {
		return Record{}, false
	}

	if IsPackageCode(pair.Identifier.Identifier) {
		ctx.ApplyPackage(pair.Identifier.Identifier, pair.Identifier.Description)
	}

	return Record{
		MajorGroup:  ctx.MajorGroup,
		PackageCode: ctx.PackageCode,
		PackageName: ctx.PackageName,

		ActivityID:   pair.Identifier.Identifier,
		ActivityName: pair.Identifier.Description,
		WorkType:     InferWorkType(pair.Identifier.Description, pair.Identifier.Identifier),

		Start:        start.Date,
		Finish:       finish.Date,
		DurationDays: int(finish.Date.Sub(start.Date).Hours() / 24),
		IsMilestone:  start.Date.Equal(finish.Date),

		SourcePage: page,
		PDFPages:   totalPages,

		StartProvisional:  start.Provisional,
		FinishProvisional: finish.Provisional,
	}, true
}
