package models

type Faculty struct {
	Base
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type FacultyPatch struct {
	Name           *string `json:"name,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Qualification  *string `json:"qualification,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Experience     *string `json:"experience,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

func (p FacultyPatch) Apply(f *Faculty) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Designation != nil {
		f.Designation = *p.Designation
	}
	if p.Qualification != nil {
		f.Qualification = *p.Qualification
	}
	if p.Specialization != nil {
		f.Specialization = *p.Specialization
	}
	if p.Experience != nil {
		f.Experience = *p.Experience
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
}
