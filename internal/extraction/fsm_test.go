package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line   string
		header Section
		closes []Section
	}{
		{line: "Education", header: SectionEducation, closes: []Section{SectionExperience, SectionSkills}},
		{line: "Work History", header: SectionExperience, closes: []Section{SectionEducation}},
		{line: "Education & Work History", header: SectionEducation, closes: []Section{SectionEducation, SectionExperience, SectionSkills}},
		{line: "Programming Languages", header: SectionSkills},
		{line: "Networking and Frameworks", header: SectionNone},
		{line: "Projects", header: SectionNone, closes: []Section{SectionEducation, SectionExperience, SectionSkills}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := Classify(tt.line)
			assert.Equal(t, tt.header, c.Header)
			for _, s := range []Section{SectionEducation, SectionExperience, SectionSkills} {
				assert.Equal(t, contains(tt.closes, s), c.Closes(s), "closes %s", s)
			}
		})
	}
}

func contains(sections []Section, s Section) bool {
	for _, v := range sections {
		if v == s {
			return true
		}
	}
	return false
}

func TestEventFor(t *testing.T) {
	tests := []struct {
		name  string
		state state
		line  string
		want  event
	}{
		{"idle header", stateIdle, "Education", eventEnterEducation},
		{"idle projects is data", stateIdle, "Projects", eventData},
		{"idle plain line", stateIdle, "John Smith", eventData},
		{"education keyword inside education", stateInEducation, "Bachelor of Science", eventData},
		{"education to experience", stateInEducation, "Work History", eventEnterExperience},
		{"education closed by projects", stateInEducation, "Projects", eventClose},
		{"work word does not close experience", stateInExperience, "Work at Globex 2019", eventData},
		{"experience to skills", stateInExperience, "Technical Skills", eventEnterSkills},
		{"skills heading inside skills", stateInSkills, "Programming Languages", eventData},
		{"skills to education", stateInSkills, "Education", eventEnterEducation},
		{"labelled phone does not open experience", stateIdle, "Work Phone: (555) 123-4567", eventData},
		{"labelled phone does not close experience", stateInExperience, "Phone: 555-123-4567 Education", eventData},
		{"labelled phone closes education", stateInEducation, "Work Phone: (555) 123-4567", eventClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventFor(tt.state, Classify(tt.line)))
		})
	}
}

func TestTransitionTableComplete(t *testing.T) {
	events := []event{eventData, eventEnterEducation, eventEnterExperience, eventEnterSkills, eventClose}
	for _, s := range []state{stateIdle, stateInEducation, stateInExperience, stateInSkills} {
		for _, e := range events {
			_, ok := transitions[s][e]
			assert.True(t, ok, "missing transition state=%d event=%d", s, e)
		}
	}
}

func TestStep(t *testing.T) {
	assert.Equal(t, transition{next: stateIdle, flush: true}, step(stateInSkills, Classify("Projects")))
	assert.Equal(t, transition{next: stateInEducation, feed: true}, step(stateInEducation, Classify("State University")))
	assert.Equal(t, transition{next: stateInSkills, inline: true}, step(stateIdle, Classify("Skills: Go")))
}
