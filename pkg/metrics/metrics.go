package metrics

// DurationBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics. OCR calls shell
// out to an external engine, so the upper buckets reach well past a second.
var DurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

// PayloadBuckets provides histogram buckets in bytes for request payload
// sizes, spanning thumbnail-sized images up to large page scans.
var PayloadBuckets = []float64{1 << 10, 8 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20, 64 << 20} //nolint: gochecknoglobals, lll
