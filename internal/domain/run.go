package domain

// RunInput describes one requested ingestion run. Location is either a
// location id or an exact display name; ReelCount is the maximum number
// of reels to ingest.
type RunInput struct {
	Location  string `json:"locationName"`
	ReelCount int    `json:"reelCount"`
}

// RunResult is the final outcome of a pipeline run. Message is safe to
// show to end users; diagnostic detail stays in the logs.
type RunResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ProcessedReels int    `json:"processedReels,omitempty"`
}
