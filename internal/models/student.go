package models

type Student struct {
	Base
	Name    string  `json:"name"`
	RollNo  string  `json:"rollNo"`
	Year    int     `json:"year"`
	Section string  `json:"section"`
	Email   string  `json:"email"`
	CGPA    float64 `json:"cgpa"`
}

type StudentPatch struct {
	Name    *string  `json:"name,omitempty"`
	RollNo  *string  `json:"rollNo,omitempty"`
	Year    *int     `json:"year,omitempty"`
	Section *string  `json:"section,omitempty"`
	Email   *string  `json:"email,omitempty"`
	CGPA    *float64 `json:"cgpa,omitempty"`
}

func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.RollNo != nil {
		s.RollNo = *p.RollNo
	}
	if p.Year != nil {
		s.Year = *p.Year
	}
	if p.Section != nil {
		s.Section = *p.Section
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.CGPA != nil {
		s.CGPA = *p.CGPA
	}
}
