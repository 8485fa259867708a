package extraction

// state is the segmenter's position in the document.
type state int

const (
	stateIdle state = iota
	stateInEducation
	stateInExperience
	stateInSkills
)

func (s state) section() Section {
	switch s {
	case stateInEducation:
		return SectionEducation
	case stateInExperience:
		return SectionExperience
	case stateInSkills:
		return SectionSkills
	default:
		return SectionNone
	}
}

// event is what a line means relative to the current state.
type event int

const (
	eventData event = iota
	eventEnterEducation
	eventEnterExperience
	eventEnterSkills
	eventClose
)

// transition is the row of the table for one (state, event) pair.
// flush closes the partial entity of the section being left; feed hands the
// line to the active section's parser. inline marks skills headings whose
// text after a colon ("Skills: Go, SQL") is itself skill data.
type transition struct {
	next   state
	flush  bool
	feed   bool
	inline bool
}

var transitions = map[state]map[event]transition{
	stateIdle: {
		eventData:            {next: stateIdle},
		eventEnterEducation:  {next: stateInEducation},
		eventEnterExperience: {next: stateInExperience},
		eventEnterSkills:     {next: stateInSkills, inline: true},
		eventClose:           {next: stateIdle},
	},
	stateInEducation: {
		eventData:            {next: stateInEducation, feed: true},
		eventEnterEducation:  {next: stateInEducation, flush: true},
		eventEnterExperience: {next: stateInExperience, flush: true},
		eventEnterSkills:     {next: stateInSkills, flush: true, inline: true},
		eventClose:           {next: stateIdle, flush: true},
	},
	stateInExperience: {
		eventData:            {next: stateInExperience, feed: true},
		eventEnterEducation:  {next: stateInEducation, flush: true},
		eventEnterExperience: {next: stateInExperience, flush: true},
		eventEnterSkills:     {next: stateInSkills, flush: true, inline: true},
		eventClose:           {next: stateIdle, flush: true},
	},
	stateInSkills: {
		eventData:            {next: stateInSkills, feed: true},
		eventEnterEducation:  {next: stateInEducation, flush: true},
		eventEnterExperience: {next: stateInExperience, flush: true},
		eventEnterSkills:     {next: stateInSkills, flush: true, inline: true},
		eventClose:           {next: stateIdle, flush: true},
	},
}

// eventFor derives the event for a classified line. While idle only header
// triggers matter. Inside a section the terminator rule is tested first; a
// terminating line re-enters a section if it is also a header. Labelled
// telephone lines neither open nor close the experience section.
func eventFor(s state, c LineClass) event {
	if c.ContactLabel && s == stateInExperience {
		return eventData
	}
	if s != stateIdle && !c.Closes(s.section()) {
		return eventData
	}
	header := c.Header
	if c.ContactLabel && header == SectionExperience {
		header = SectionNone
	}
	switch header {
	case SectionEducation:
		return eventEnterEducation
	case SectionExperience:
		return eventEnterExperience
	case SectionSkills:
		return eventEnterSkills
	}
	if s == stateIdle {
		return eventData
	}
	return eventClose
}

// step looks up the transition for a line.
func step(s state, c LineClass) transition {
	return transitions[s][eventFor(s, c)]
}
