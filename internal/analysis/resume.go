package analysis

// Resume is the structured extraction of a candidate's resume. The upper-case
// section keys under "qualifications" are part of the wire format consumed by
// the downstream ranking step; do not rename them.
type Resume struct {
	Summary        string         `json:"summary"`
	JobTitle       string         `json:"job_title"`
	Qualifications Qualifications `json:"qualifications"`
}

type Qualifications struct {
	Skills             Skills             `json:"SKILLS"`
	Education          Education          `json:"EDUCATION"`
	Experience         Experience         `json:"EXPERIENCE"`
	OtherInformation   OtherInformation   `json:"OTHER_INFORMATION"`
	ContactInformation ContactInformation `json:"CONTACT_INFORMATION"`
}

type Skills struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
}

type Education struct {
	Degree []string `json:"degree"`
	Level  []string `json:"level"`
	Major  []string `json:"major"`
}

type Experience struct {
	YearsInTotal          int      `json:"years_in_total"`
	YearsInCurrentCompany int      `json:"years_in_current_company"`
	CurrentEmployer       []string `json:"current_employer"`
	Position              []string `json:"position"`
	Duration              []string `json:"duration"`
}

type OtherInformation struct {
	AwardsAndAchievements []string `json:"awards_and_achievements"`
	Publications          []string `json:"publications"`
	Projects              []string `json:"projects"`
	Volunteering          []string `json:"volunteering"`
	Leadership            []string `json:"leadership"`
}

type ContactInformation struct {
	Email   []string `json:"email"`
	Phone   []string `json:"phone"`
	Address []string `json:"address"`
	Website []string `json:"website"`
}

func (r *Resume) normalize() {
	q := &r.Qualifications
	q.Skills.Technical = notNil(q.Skills.Technical)
	q.Skills.Soft = notNil(q.Skills.Soft)
	q.Skills.Languages = notNil(q.Skills.Languages)
	q.Skills.Certifications = notNil(q.Skills.Certifications)
	q.Education.Degree = notNil(q.Education.Degree)
	q.Education.Level = notNil(q.Education.Level)
	q.Education.Major = notNil(q.Education.Major)
	q.Experience.CurrentEmployer = notNil(q.Experience.CurrentEmployer)
	q.Experience.Position = notNil(q.Experience.Position)
	q.Experience.Duration = notNil(q.Experience.Duration)
	q.OtherInformation.AwardsAndAchievements = notNil(q.OtherInformation.AwardsAndAchievements)
	q.OtherInformation.Publications = notNil(q.OtherInformation.Publications)
	q.OtherInformation.Projects = notNil(q.OtherInformation.Projects)
	q.OtherInformation.Volunteering = notNil(q.OtherInformation.Volunteering)
	q.OtherInformation.Leadership = notNil(q.OtherInformation.Leadership)
	q.ContactInformation.Email = notNil(q.ContactInformation.Email)
	q.ContactInformation.Phone = notNil(q.ContactInformation.Phone)
	q.ContactInformation.Address = notNil(q.ContactInformation.Address)
	q.ContactInformation.Website = notNil(q.ContactInformation.Website)
}
