package domain

import "github.com/google/uuid"

// Phrase is one entry of the phrasebook guide.
type Phrase struct {
	ID         uuid.UUID `json:"id"`
	Word       string    `json:"word"`
	Phonetic   string    `json:"phonetic"`
	Simplified string    `json:"simplified"`
	Meaning    string    `json:"meaning"`
	Position   int       `json:"position"`
}
