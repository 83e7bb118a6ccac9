package analysis

// JobDescription is the structured extraction of a job posting, split into
// required and preferred qualifications. Section keys are upper-case on the
// wire, matching the resume side.
type JobDescription struct {
	JobTitle         string             `json:"job_title"`
	Location         []string           `json:"location"`
	JobType          string             `json:"job_type"`
	WorkType         string             `json:"work_type"`
	Education        JDEducation        `json:"EDUCATION"`
	Experience       JDExperience       `json:"EXPERIENCE"`
	Skills           JDSkills           `json:"SKILLS"`
	OtherInformation JDOtherInformation `json:"OTHER_INFORMATION"`
}

type JDEducation struct {
	RequiredDegree  []string `json:"required_degree"`
	PreferredDegree []string `json:"preferred_degree"`
	RequiredLevel   []string `json:"required_level"`
	PreferredLevel  []string `json:"preferred_level"`
	RequiredMajor   []string `json:"required_major"`
	PreferredMajor  []string `json:"preferred_major"`
}

type JDExperience struct {
	RequiredYearsInTotal  int `json:"required_years_in_total"`
	PreferredYearsInTotal int `json:"preferred_years_in_total"`
}

type JDSkills struct {
	RequiredTechnical       []string `json:"required_technical"`
	PreferredTechnical      []string `json:"preferred_technical"`
	RequiredSoft            []string `json:"required_soft"`
	PreferredSoft           []string `json:"preferred_soft"`
	RequiredLanguages       []string `json:"required_languages"`
	PreferredLanguages      []string `json:"preferred_languages"`
	RequiredCertifications  []string `json:"required_certifications"`
	PreferredCertifications []string `json:"preferred_certifications"`
}

type JDOtherInformation struct {
	Salary               string   `json:"salary"`
	Benefits             []string `json:"benefits"`
	BonusQualifications  []string `json:"bonus_qualifications"`
	RelocationAssistance bool     `json:"relocation_assistance"`
}

func (j *JobDescription) normalize() {
	j.Location = notNil(j.Location)
	j.Education.RequiredDegree = notNil(j.Education.RequiredDegree)
	j.Education.PreferredDegree = notNil(j.Education.PreferredDegree)
	j.Education.RequiredLevel = notNil(j.Education.RequiredLevel)
	j.Education.PreferredLevel = notNil(j.Education.PreferredLevel)
	j.Education.RequiredMajor = notNil(j.Education.RequiredMajor)
	j.Education.PreferredMajor = notNil(j.Education.PreferredMajor)
	j.Skills.RequiredTechnical = notNil(j.Skills.RequiredTechnical)
	j.Skills.PreferredTechnical = notNil(j.Skills.PreferredTechnical)
	j.Skills.RequiredSoft = notNil(j.Skills.RequiredSoft)
	j.Skills.PreferredSoft = notNil(j.Skills.PreferredSoft)
	j.Skills.RequiredLanguages = notNil(j.Skills.RequiredLanguages)
	j.Skills.PreferredLanguages = notNil(j.Skills.PreferredLanguages)
	j.Skills.RequiredCertifications = notNil(j.Skills.RequiredCertifications)
	j.Skills.PreferredCertifications = notNil(j.Skills.PreferredCertifications)
	j.OtherInformation.Benefits = notNil(j.OtherInformation.Benefits)
	j.OtherInformation.BonusQualifications = notNil(j.OtherInformation.BonusQualifications)
}
