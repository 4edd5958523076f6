package history

type EntryType string

const (
	TypePetCreated        EntryType = "PET_CREATED"
	TypePetUpdated        EntryType = "PET_UPDATED"
	TypeVisitScheduled    EntryType = "VISIT_SCHEDULED"
	TypeAdoptionConcluded EntryType = "ADOPTION_CONCLUDED"
)

func (t EntryType) Valid() bool {
	switch t {
	case TypePetCreated, TypePetUpdated, TypeVisitScheduled, TypeAdoptionConcluded:
		return true
	}
	return false
}
