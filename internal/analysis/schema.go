package analysis

import "google.golang.org/genai"

// ResponseSchema is the genai schema the model output is constrained to.
// Descriptions matter: they are the only place where per-field guidance
// reaches the model when structured output is enabled, so they restate the
// extraction rules rather than just naming the field.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "Summary of the resume that only includes the most relevant information. For example: Name, Current Position, Current Company, Current Location, Years of Experience, top 5 skills.",
			},
			"classification": {
				Type:        genai.TypeString,
				Enum:        []string{string(GoodFit), string(NotFit), string(PartialFit)},
				Description: "Classification of the resume. Must be exactly one of: Good Fit, Not Fit, Partial Fit.",
			},
			"overall_score": {
				Type:        genai.TypeNumber,
				Description: "Overall score of the resume on a scale of 1 to 100 based on how well it matches the job description. For example: 85",
			},
			"rationale": {
				Type:        genai.TypeString,
				Description: "A clear, second-person explanation directly addressing the owner of the resume why they were classified as Good Fit, Partial Fit, or Not Fit. Focus on strengths, gaps, and the reasoning behind the score.",
			},
			"suggestions": {
				Type:        genai.TypeString,
				Description: "Personalized advice written directly to the candidate, using second-person tone. For example: \"You should improve your resume by adding certifications in cloud technologies.\"",
			},
			"matching_skills": stringList("List of skills that match the job description."),
			"missing_skills":  stringList("List of skills that are missing in the resume but are required in the job description."),
			"resume":          resumeSchema(),
			"job_description": jobDescriptionSchema(),
		},
		Required: []string{
			"summary", "classification", "overall_score", "rationale",
			"suggestions", "matching_skills", "missing_skills",
			"resume", "job_description",
		},
	}
}

func resumeSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Structured data extracted from the Resume of the candidate.",
		Properties: map[string]*genai.Schema{
			"summary":   {Type: genai.TypeString, Description: "Summary of the resume."},
			"job_title": {Type: genai.TypeString, Description: "Current job title of the candidate or the position they are applying for."},
			"qualifications": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"SKILLS": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"technical":      stringList("Technical skills."),
							"soft":           stringList("Soft skills."),
							"languages":      stringList("Languages spoken."),
							"certifications": stringList("Certifications obtained."),
						},
						Required: []string{"technical", "soft", "languages", "certifications"},
					},
					"EDUCATION": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"degree": stringList("Degree of the education. For example: BS, MS, PhD, MBA."),
							"level":  stringList("Level of the education. For example: Diploma, Bachelor's, Master's, Doctoral."),
							"major":  stringList("Major of the education. For example: Computer Science, Business Administration."),
						},
						Required: []string{"degree", "level", "major"},
					},
					"EXPERIENCE": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"years_in_total":           {Type: genai.TypeInteger, Description: "Total years of experience."},
							"years_in_current_company": {Type: genai.TypeInteger, Description: "Years of experience in the current company."},
							"current_employer":         stringList("Name of the current or most recent employer."),
							"position":                 stringList("Position or role at the current company or the most recent position."),
							"duration":                 stringList("Duration at the current company or in the most recent position."),
						},
						Required: []string{"years_in_total", "years_in_current_company", "current_employer", "position", "duration"},
					},
					"OTHER_INFORMATION": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"awards_and_achievements": stringList("Awards and achievements of the candidate."),
							"publications":            stringList("Publications by the candidate."),
							"projects":                stringList("Projects worked on by the candidate."),
							"volunteering":            stringList("Volunteering experience of the candidate."),
							"leadership":              stringList("Leadership experience of the candidate."),
						},
						Required: []string{"awards_and_achievements", "publications", "projects", "volunteering", "leadership"},
					},
					"CONTACT_INFORMATION": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"email":   stringList("Email address of the candidate."),
							"phone":   stringList("Phone number of the candidate."),
							"address": stringList("Address of the candidate."),
							"website": stringList("Website of the candidate or URL to the LinkedIn/GitHub profile."),
						},
						Required: []string{"email", "phone", "address", "website"},
					},
				},
				Required: []string{"SKILLS", "EDUCATION", "EXPERIENCE", "OTHER_INFORMATION", "CONTACT_INFORMATION"},
			},
		},
		Required: []string{"summary", "job_title", "qualifications"},
	}
}

func jobDescriptionSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Structured data extracted from the Job Description.",
		Properties: map[string]*genai.Schema{
			"job_title": {Type: genai.TypeString, Description: "Title/Position/Role of the job. For example: Software Engineer, Data Scientist."},
			"location":  stringList("Location of the job."),
			"job_type":  {Type: genai.TypeString, Description: "Type of job. For example: Full-time, Part-time, Contract."},
			"work_type": {Type: genai.TypeString, Description: "Type of work. For example: Remote, On-site, Hybrid."},
			"EDUCATION": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"required_degree":  stringList("Required degree for the job. For example: BS, MS, PhD, MBA."),
					"preferred_degree": stringList("Preferred degree for the job."),
					"required_level":   stringList("Required level for the job. For example: Diploma, Bachelor's, Master's, Doctoral."),
					"preferred_level":  stringList("Preferred level for the job."),
					"required_major":   stringList("Required major for the job. For example: Computer Science."),
					"preferred_major":  stringList("Preferred major for the job."),
				},
				Required: []string{"required_degree", "preferred_degree", "required_level", "preferred_level", "required_major", "preferred_major"},
			},
			"EXPERIENCE": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"required_years_in_total":  {Type: genai.TypeInteger, Description: "Required total years of experience for the job."},
					"preferred_years_in_total": {Type: genai.TypeInteger, Description: "Preferred total years of experience for the job."},
				},
				Required: []string{"required_years_in_total", "preferred_years_in_total"},
			},
			"SKILLS": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"required_technical":       stringList("Required technical skills for the job."),
					"preferred_technical":      stringList("Preferred technical skills for the job."),
					"required_soft":            stringList("Required soft skills for the job."),
					"preferred_soft":           stringList("Preferred soft skills for the job."),
					"required_languages":       stringList("Required languages for the job."),
					"preferred_languages":      stringList("Preferred languages for the job."),
					"required_certifications":  stringList("Required certifications for the job."),
					"preferred_certifications": stringList("Preferred certifications for the job."),
				},
				Required: []string{
					"required_technical", "preferred_technical", "required_soft", "preferred_soft",
					"required_languages", "preferred_languages", "required_certifications", "preferred_certifications",
				},
			},
			"OTHER_INFORMATION": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"salary":                {Type: genai.TypeString, Description: "Salary range for the job."},
					"benefits":              stringList("Benefits mentioned in the job description."),
					"bonus_qualifications":  stringList("Bonus qualifications that are not mandatory but potentially beneficial."),
					"relocation_assistance": {Type: genai.TypeBoolean, Description: "Whether relocation assistance is provided for the job."},
				},
				Required: []string{"salary", "benefits", "bonus_qualifications", "relocation_assistance"},
			},
		},
		Required: []string{"job_title", "location", "job_type", "work_type", "EDUCATION", "EXPERIENCE", "SKILLS", "OTHER_INFORMATION"},
	}
}

func stringList(desc string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: desc,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}
