package ports

type TickMetrics interface {
	RecordTick(ownerID string, durationMillis int64)
	RecordEvents(ownerID string, count int)
	RecordDeaths(ownerID string, count int)
	RecordBirths(ownerID string, count int)
}
