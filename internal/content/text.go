package content

// Email is the owner's address, shared by the contact card and the closing call to action.
const Email = "faizanalifas@gmail.com"

var (
	AboutMe = []string{
		`I'm a Computer Science undergraduate with a strong foundation in software engineering and system design, focused on building intelligent systems driven by artificial intelligence`,
		`My work centers on developing AI-powered solutions, designing scalable systems that support intelligent decision-making, intuitive, and user-focused digital experiences. I enjoy transforming complex ideas into efficient, impactful software that balances intelligence`,
		`Currently, I'm focused on continuous learning and exploring new technologies to build more capable and impactful solutions`,
	}

	ProjectOne = `Developed a voice-activated AI assistant processing commands with real-time speech recognition and JSON-based action parsing.`

	ProjectTwo = `A multi-user collaborative drawing application built with vanilla JavaScript, HTML5 Canvas API, and WebSocket for real-time synchronization.`

	ProjectThree = `An intelligent, privacy-focused text processing engine that leverages transformer-based models to deliver rapid, local summarization and automated FAQ generation for large-scale documents.`

	ProjectFour = `Developed "Sahas," an AI-powered emergency chatbot featuring automatic location detection and real-time navigation routing to provide critical safety guidance and hospital access during flood disasters.`
)

// Default returns the site's content. Each call returns a fresh copy.
func Default() *Portfolio {
	return &Portfolio{
		Title: "Faizan Ali Sayed | Portfolio",
		Brand: "Portfolio",
		Nav: []NavItem{
			{Label: "About", Anchor: SectionAbout},
			{Label: "Skills", Anchor: SectionSkills},
			{Label: "Experience", Anchor: SectionExperience},
			{Label: "Projects", Anchor: SectionProjects},
			{Label: "Contact", Anchor: SectionContact},
		},
		Hero: Hero{
			Name:    "Faizan Ali Sayed",
			Tagline: "Turning ideas into reality through my code",
			Actions: []Action{
				{Label: "View My Experience", Href: "#" + SectionExperience, Primary: true, Icon: IconArrowRight},
				{Label: "Get In Touch", Href: "#" + SectionContact, Icon: IconArrowRight},
			},
		},
		About: About{
			Heading:    "About Me",
			Paragraphs: append([]string(nil), AboutMe...),
			Photo: Image{
				URL: "https://i.ibb.co/wNBBVDdV/Photo.jpg",
				Alt: "Profile description",
			},
		},
		Headings: Headings{
			Skills:     "Skills & Technologies",
			Experience: "Experience",
			Projects:   "Projects",
		},
		Skills: []SkillCategory{
			{
				Title:  "Languages",
				Skills: []string{"C", "C++", "Java", "Javascript", "Python"},
				Icon:   IconCode,
			},
			{
				Title:  "Web Development",
				Skills: []string{"HTML", "Tailwind CSS", "React", "Canvas API", "MYSQL"},
				Icon:   IconServer,
			},
			{
				Title:  "Technical Foundation",
				Skills: []string{"Data Structures", "Object Oriented Programming", "Database Management System", "Version Control"},
				Icon:   IconPalette,
			},
		},
		Experience: []ExperienceEntry{
			{
				Company:     "Institute of Judicial Administration Lushoto",
				Role:        "Project Intern",
				Period:      "Jul 2025 - Aug 2025",
				Description: " Developed a Hostel Room Allotment System that automated room allocation for over 1000+ students while integrating real-time tracking and admin dashboard, improving hostel occupancy visibility and decision-making.",
				Logo:        "https://media.licdn.com/dms/image/v2/D4D0BAQH8fxapTcXNdg/company-logo_200_200/company-logo_200_200/0/1722665741506?e=1770249600&v=beta&t=8k1knks-kCVMO3JocKVQ8jemcIv62iIY2a_XpzkcLgY",
			},
			{
				Company:     "IAESTE INDIA",
				Role:        "Head of Administration",
				Period:      "Jun 2024 - Jun 2025",
				Description: "Managed the global internship cycle for 500+ applicants, releasing 800+ offers and placing 110 interns worldwide achieving a 22% conversion rate while overseeing 7 local committees.",
				Logo:        "https://media.licdn.com/dms/image/v2/C510BAQGlzNKvG4F4qg/company-logo_200_200/company-logo_200_200/0/1630630748730/iaeste_india_logo?e=1770249600&v=beta&t=bP-XBUdCtOHWqD1G2ZCI_540ixTfEI5T_QiC4SKkcNo",
			},
		},
		Projects: []ProjectEntry{
			{
				Title:       "JARVIS Voice Activated AI Assistant",
				Description: ProjectOne,
				Tags:        []string{"Langchain", "Qwen3:4B", "SpeechRecognition", "Pytorch", "Porcupine", "TTS", "Ollama"},
				Link:        "https://github.com/RED1EYE/JARVIS-Voice-Activated-AI-Assistant",
			},
			{
				Title:       "Collaborative Canvas",
				Description: ProjectTwo,
				Tags:        []string{"Canvas API", "Vanilla JavaScript", "WebSocket", "Node.js", "Express.js"},
				Link:        "https://redeye-fribble.onrender.com/",
			},
			{
				Title:       "Text Summarizer & FAQ Generator",
				Description: ProjectThree,
				Tags:        []string{"Streamlit", "Python", "Rest API", "Ollama", "Langchain"},
				Link:        "https://github.com/RED1EYE/Text-Summarizer-and-FAQ-generator",
			},
			{
				Title:       "SAHAS - AI Emergency Chatbot for Flood Safety",
				Description: ProjectFour,
				Tags:        []string{"Streamlit", "Python", "Langchain", "Google Maps API", "Groq API"},
				Link:        "https://red1eye-flood-detection-and-safety-route-test2-aamznq.streamlit.app/",
			},
		},
		Contact: Contact{
			Heading: "Get In Touch",
			Blurb:   "I'd love to hear from you. Let's create something amazing together.",
			Channels: []ContactChannel{
				{Icon: IconMail, Title: "Email", Value: Email, Href: "mailto:" + Email},
				{Icon: IconLinkedin, Title: "LinkedIn", Value: "Faizan Ali Sayed", Href: "https://www.linkedin.com/in/faizan-ali-sayed/"},
				{Icon: IconGithub, Title: "GitHub", Value: "RED1EYE", Href: "https://github.com/RED1EYE"},
			},
			Actions: []Action{
				{Label: "Get in Touch", Href: "mailto:" + Email, Primary: true},
				{Label: "Resume", Href: "https://drive.google.com/file/d/18MVCE8evy-FVyMmiwkYADKrfkbNFDW_Y/view?usp=sharing"},
			},
		},
		// The year is part of the copy, not computed.
		Footer: "© 2024 Faizan. All rights reserved.",
	}
}
