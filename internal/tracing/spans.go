package tracing

// Span attribute keys for board editing traces.
// These constants define the semantic conventions for span attributes.
const (
	// Session attributes
	AttrSessionID = "session.id"

	// Board attributes
	AttrBoardComponents = "board.components"
	AttrSnapshotLevel   = "board.snapshot_level"

	// Component attributes
	AttrComponentName   = "component.name"
	AttrComponentNumber = "component.number"
	AttrComponentSide   = "component.side"

	// Edit attributes
	AttrEditOp      = "edit.op"
	AttrEditDegrees = "edit.degrees"
	AttrReplayCount = "edit.replay_count"

	// Library attributes
	AttrLibraryPath     = "library.path"
	AttrLibraryPackages = "library.packages"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixBoard   = "board."
	SpanPrefixLibrary = "library."
	SpanPrefixConfig  = "config."
)

// Event names for span events.
const (
	EventComponentAdded  = "component.added"
	EventSnapshotTaken   = "snapshot.taken"
	EventHistoryRewound  = "history.rewound"
	EventHistoryReplayed = "history.replayed"
	EventLibraryReloaded = "library.reloaded"
	EventErrorOccurred   = "error.occurred"
)
