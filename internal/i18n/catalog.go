package i18n

// Key identifies a localized string
type Key string

// Resume preview
const (
	YourName                 Key = "yourName"
	ProfessionalTitleDefault Key = "professionalTitleDefault"
	Summary                  Key = "summary"
	WorkExperienceTitle      Key = "workExperienceTitle"
	EducationPreviewTitle    Key = "educationPreviewTitle"
	SkillsPreviewTitle       Key = "skillsPreviewTitle"
	Present                  Key = "present"
	FieldConnector           Key = "fieldConnector"
	PhotoAlt                 Key = "photoAlt"
)

// Form and wizard
const (
	ResumeBuilder       Key = "resumeBuilder"
	StepPersonal        Key = "personal"
	StepWork            Key = "work"
	StepEducation       Key = "education"
	StepSkills          Key = "skills"
	StepTemplate        Key = "template"
	ExportPDF           Key = "exportPDF"
	FullName            Key = "fullName"
	ProfessionalTitle   Key = "professionalTitle"
	Email               Key = "email"
	Phone               Key = "phone"
	Address             Key = "address"
	ProfessionalSummary Key = "professionalSummary"
	PhotoPath           Key = "photoPath"
	AddExperience       Key = "addExperience"
	Company             Key = "company"
	Position            Key = "position"
	StartDate           Key = "startDate"
	EndDate             Key = "endDate"
	CurrentlyWorkHere   Key = "currentlyWorkHere"
	Description         Key = "description"
	AddEducation        Key = "addEducation"
	Institution         Key = "institution"
	Degree              Key = "degree"
	FieldOfStudy        Key = "fieldOfStudy"
	CurrentlyStudying   Key = "currentlyStudyingHere"
	AddSkill            Key = "addSkill"
	ChooseTemplate      Key = "chooseTemplate"
	ChooseColor         Key = "chooseColor"
	RemoveEntry         Key = "removeEntry"
	ChooseEntry         Key = "chooseEntry"
	Continue            Key = "continue"
	NextStep            Key = "nextStep"
	PreviousStep        Key = "previousStep"
	Finish              Key = "finish"
	NotImplementedHint  Key = "notImplementedHint"
)

var ptBR = map[Key]string{
	YourName:                 "Seu Nome",
	ProfessionalTitleDefault: "Cargo Profissional",
	Summary:                  "Resumo",
	WorkExperienceTitle:      "Experiência Profissional",
	EducationPreviewTitle:    "Educação",
	SkillsPreviewTitle:       "Habilidades",
	Present:                  "Presente",
	FieldConnector:           "em",
	PhotoAlt:                 "Foto de perfil",

	ResumeBuilder:       "Criador de Currículo",
	StepPersonal:        "Pessoal",
	StepWork:            "Experiência",
	StepEducation:       "Educação",
	StepSkills:          "Habilidades",
	StepTemplate:        "Template",
	ExportPDF:           "Exportar PDF",
	FullName:            "Nome Completo",
	ProfessionalTitle:   "Cargo Profissional",
	Email:               "Email",
	Phone:               "Telefone",
	Address:             "Endereço",
	ProfessionalSummary: "Resumo Profissional",
	PhotoPath:           "Caminho da foto (opcional)",
	AddExperience:       "Adicionar Experiência",
	Company:             "Empresa",
	Position:            "Cargo",
	StartDate:           "Data de Início (AAAA-MM)",
	EndDate:             "Data de Término (AAAA-MM)",
	CurrentlyWorkHere:   "Trabalho atualmente aqui",
	Description:         "Descrição",
	AddEducation:        "Adicionar Educação",
	Institution:         "Instituição",
	Degree:              "Grau",
	FieldOfStudy:        "Área de Estudo",
	CurrentlyStudying:   "Estou estudando aqui atualmente",
	AddSkill:            "Adicionar habilidade (vazio para continuar)",
	ChooseTemplate:      "Escolha um template",
	ChooseColor:         "Escolha uma paleta de cores",
	RemoveEntry:         "Remover um item",
	ChooseEntry:         "Qual item?",
	Continue:            "Continuar",
	NextStep:            "Próximo",
	PreviousStep:        "Anterior",
	Finish:              "Concluir",
	NotImplementedHint:  "usa o layout padrão",
}

var enUS = map[Key]string{
	YourName:                 "Your Name",
	ProfessionalTitleDefault: "Professional Title",
	Summary:                  "Summary",
	WorkExperienceTitle:      "Work Experience",
	EducationPreviewTitle:    "Education",
	SkillsPreviewTitle:       "Skills",
	Present:                  "Present",
	FieldConnector:           "in",
	PhotoAlt:                 "Profile photo",

	ResumeBuilder:       "Resume Builder",
	StepPersonal:        "Personal",
	StepWork:            "Work",
	StepEducation:       "Education",
	StepSkills:          "Skills",
	StepTemplate:        "Template",
	ExportPDF:           "Export PDF",
	FullName:            "Full Name",
	ProfessionalTitle:   "Professional Title",
	Email:               "Email",
	Phone:               "Phone",
	Address:             "Address",
	ProfessionalSummary: "Professional Summary",
	PhotoPath:           "Photo path (optional)",
	AddExperience:       "Add work experience",
	Company:             "Company",
	Position:            "Position",
	StartDate:           "Start Date (YYYY-MM)",
	EndDate:             "End Date (YYYY-MM)",
	CurrentlyWorkHere:   "I currently work here",
	Description:         "Description",
	AddEducation:        "Add education",
	Institution:         "Institution",
	Degree:              "Degree",
	FieldOfStudy:        "Field of Study",
	CurrentlyStudying:   "I am currently studying here",
	AddSkill:            "Add a skill (empty to continue)",
	ChooseTemplate:      "Choose a template",
	ChooseColor:         "Choose a color palette",
	RemoveEntry:         "Remove an entry",
	ChooseEntry:         "Which entry?",
	Continue:            "Continue",
	NextStep:            "Next",
	PreviousStep:        "Previous",
	Finish:              "Finish",
	NotImplementedHint:  "uses the default layout",
}

var catalogs = map[Language]map[Key]string{
	PortugueseBR: ptBR,
	EnglishUS:    enUS,
}
