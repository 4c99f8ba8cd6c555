package pipeline

// Stats aggregates what one processing run did to a cue list.
type Stats struct {
	OriginalCount int
	FinalCount    int
	Adjusted      int
	Merged        int
	Renumbered    int
	TextChanges   int
}
