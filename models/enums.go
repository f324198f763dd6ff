package models

// Category is the closed set of post sections.
type Category string

const (
	CategoryLaw      Category = "sud-huquq"
	CategoryEconomy  Category = "ijtimoiy-iqtisodiy"
	CategoryPolitics Category = "siyosat"
	CategoryWorld    Category = "xalqaro"
	CategoryCulture  Category = "madaniyat"
	CategorySport    Category = "sport"
)

var categories = []Category{
	CategoryLaw,
	CategoryEconomy,
	CategoryPolitics,
	CategoryWorld,
	CategoryCulture,
	CategorySport,
}

// AllCategories returns a copy of the accepted categories in display order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

// Subject is the closed set of contact-form topics.
type Subject string

const (
	SubjectProposal  Subject = "Taklif"
	SubjectCritique  Subject = "Tanqid"
	SubjectComplaint Subject = "Shikoyat"
)

var subjects = []Subject{SubjectProposal, SubjectCritique, SubjectComplaint}

func AllSubjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

func (s Subject) Valid() bool {
	for _, v := range subjects {
		if s == v {
			return true
		}
	}
	return false
}
