package tokenizer

// state is the FSM driver's internal position in the admissible-successor
// table. It is never exposed to callers; the public token.Kind stream is
// what external collaborators see.
type state uint8

const (
	stateStart state = iota
	stateGroupStart
	stateGroupEnd
	stateInfixOp
	stateCompEqNeq
	stateCompRelational
	stateCompHas
	statePrefixNot
	statePrefixBoostFuzz
	stateDataValue
	stateField
	stateTag
	stateEndOfInput
)

// successors is the per-state ordered admissible-successor table from
// SPEC_FULL.md §4.2. The FSM driver tries each matcher in order and commits
// the first that matches; order is itself part of the specification (see
// the matcher comments for why Float precedes Integer, etc).
var successors = map[state][]matcher{
	stateStart:      {mGroupStart, mField, mTag, mBoost, mFuzz, mNot},
	stateGroupStart: {mGroupStart, mField, mTag, mBoost, mFuzz, mNot, mGroupEnd},
	stateGroupEnd:   {mAnd, mOr, mGroupEnd},
	stateInfixOp:    {mGroupStart, mField, mTag, mBoost, mFuzz, mNot},

	// Comp(eq|neq) admits any DataValue kind. AbsoluteDate and RelativeDate
	// are tried ahead of Integer: both begin with runs of digits that a bare
	// Integer matcher would otherwise swallow a prefix of and commit to,
	// since the driver takes the FIRST match, not the longest one. Float
	// precedes Integer for the same reason ("12.5" vs "12").
	stateCompEqNeq: {mFloat, mAbsoluteDate, mRelativeDate, mInteger, mBoolean, mIPCIDR, mTag},

	// Comp(lt|lte|gt|gte) only admits ordered values, in the order
	// spec.md §4.2's table gives for this row: Integer ahead of
	// AbsoluteDate/RelativeDate, so a bare digit run like "1000" commits as
	// an Integer rather than a 4-digit year (see DESIGN.md).
	stateCompRelational: {mFloat, mInteger, mRelativeDate, mAbsoluteDate},

	// Comp(has) admits String, CIDR, IP. TAG's scanner itself only matches
	// when the run does NOT end on a bare '.', so a dotted IPv4 literal like
	// "10.0.0.1" safely falls through to the IP/CIDR matcher below.
	stateCompHas: {mTag, mIPCIDR},

	statePrefixNot:       {mGroupStart, mTag, mField, mIPCIDR, mBoolean},
	statePrefixBoostFuzz: {mGroupStart, mTag, mField},

	stateDataValue: {mGroupEnd, mAnd, mOr},

	// Field's only admissible successor is a RANGE comparator; which Comp
	// sub-state follows is decided from the matched comparator text itself
	// (see classifyComparator), not from three separate matchers here.
	stateField: {mRange},

	stateTag: {mAnd, mOr, mGroupEnd},
}

// compNextState maps the classified comparator back onto the FSM state that
// follows it.
func compNextState(k comparatorKind) state {
	switch k {
	case comparatorEqNeq:
		return stateCompEqNeq
	case comparatorHas:
		return stateCompHas
	default:
		return stateCompRelational
	}
}

// dataValueNextState is the state every literal transitions to: spec.md's
// table writes this once as "DataValue(*) -> GroupEnd, And, Or, EndOfInput".
func dataValueNextState() state { return stateDataValue }
