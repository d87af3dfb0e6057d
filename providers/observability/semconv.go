package observability

// Semantic conventions for observability attributes emitted by agentplan.

// --- Parse Attributes ---

const (
	// AttrParseKind is the response kind being parsed ("plan" or "generation")
	AttrParseKind = "parse.kind"

	// AttrParseStrategy is the cascade stage that produced the result
	AttrParseStrategy = "parse.strategy"

	// AttrParseStages lists the cascade stages in trial order
	AttrParseStages = "parse.stages"

	// AttrParseInputLength is the length of the raw response text in bytes
	AttrParseInputLength = "parse.input.length"

	// AttrParseInputPreview is a truncated preview of the raw response text
	AttrParseInputPreview = "parse.input.preview"

	// AttrParseRecords is the number of records a stage produced
	AttrParseRecords = "parse.records"

	// AttrParseKeyword is the unit keyword used for heading and delimiter matching
	AttrParseKeyword = "parse.keyword"
)

// --- Validation Attributes ---

const (
	// AttrValidationErrors is the number of validation errors
	AttrValidationErrors = "validation.errors"

	// AttrValidationWarnings is the number of validation warnings
	AttrValidationWarnings = "validation.warnings"

	// AttrDocumentName is the name of a supporting document
	AttrDocumentName = "document.name"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanParsePlan wraps one plan-response cascade run
	SpanParsePlan = "parse.plan"

	// SpanParseGeneration wraps one generation-response cascade run
	SpanParseGeneration = "parse.generation"
)

// --- Event Names ---

const (
	// EventStageMiss marks a cascade stage that produced no records
	EventStageMiss = "parse.stage.miss"

	// EventStageHit marks the cascade stage whose records were accepted
	EventStageHit = "parse.stage.hit"

	// EventStagePanic marks a cascade stage that panicked and was skipped
	EventStagePanic = "parse.stage.panic"
)

// --- Metric Names ---

const (
	// MetricStrategyHits counts accepted results per cascade stage
	MetricStrategyHits = "agentplan.parse.strategy.hits"

	// MetricParseEmpty counts cascade runs where no stage matched
	MetricParseEmpty = "agentplan.parse.empty"

	// MetricParseDuration is the histogram for cascade run duration in milliseconds
	MetricParseDuration = "agentplan.parse.duration"
)
