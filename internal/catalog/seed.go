package catalog

// Reference data written into empty collections. The tables are never handed
// out directly; CategorySeed and StaffSeed return deep copies.
var categorySeed = [...]CourseCategory{
	{
		Slug:       "web-development",
		Title:      "Web Development",
		Blurb:      "Build modern, responsive websites and web apps from scratch.",
		Highlights: []string{"HTML, CSS, JS", "React & Tailwind", "APIs & Auth"},
		Color:      "#22c55e",
		Accent:     "#10b981",
	},
	{
		Slug:       "ai-programming",
		Title:      "AI Programming",
		Blurb:      "Learn Python for AI, machine learning, and practical LLM apps.",
		Highlights: []string{"Python & NumPy", "ML & LLMs", "Model Deployment"},
		Color:      "#a855f7",
		Accent:     "#8b5cf6",
	},
	{
		Slug:       "robotics",
		Title:      "Robotics",
		Blurb:      "Program and control robots with sensors, motion, and autonomy.",
		Highlights: []string{"ROS Basics", "Sensors & Control", "Path Planning"},
		Color:      "#0ea5e9",
		Accent:     "#38bdf8",
	},
	{
		Slug:       "drone",
		Title:      "Drone Programming",
		Blurb:      "Build and pilot drones, master flight control and computer vision.",
		Highlights: []string{"PX4 & MAVSDK", "Stabilization", "Aerial CV"},
		Color:      "#22d3ee",
		Accent:     "#06b6d4",
	},
	{
		Slug:       "3d-printing",
		Title:      "3D Product & Printing",
		Blurb:      "Design 3D models and turn ideas into physical prototypes.",
		Highlights: []string{"Fusion/Blender", "Slicing & Materials", "Rapid Prototyping"},
		Color:      "#f59e0b",
		Accent:     "#fbbf24",
	},
}

var staffSeed = [...]StaffMember{
	{
		Name:    "Ava Chen",
		Role:    "Head of AI",
		Bio:     "Leads our AI track with 8+ years in ML and LLM apps.",
		Avatar:  "https://i.pravatar.cc/150?img=1",
		Socials: map[string]string{"twitter": "https://twitter.com/avachen"},
	},
	{
		Name:    "Miguel Torres",
		Role:    "Robotics Lead",
		Bio:     "ROS expert building autonomous ground and aerial robots.",
		Avatar:  "https://i.pravatar.cc/150?img=5",
		Socials: map[string]string{"github": "https://github.com/miguelt"},
	},
	{
		Name:    "Sara Patel",
		Role:    "Web Instructor",
		Bio:     "Front-end engineer focused on React and delightful UX.",
		Avatar:  "https://i.pravatar.cc/150?img=11",
		Socials: map[string]string{"linkedin": "https://linkedin.com/in/sarapatel"},
	},
}

func CategorySeed() []CourseCategory {
	out := make([]CourseCategory, len(categorySeed))
	for i, c := range categorySeed {
		c.Highlights = append([]string(nil), c.Highlights...)
		out[i] = c
	}
	return out
}

func StaffSeed() []StaffMember {
	out := make([]StaffMember, len(staffSeed))
	for i, m := range staffSeed {
		if m.Socials != nil {
			socials := make(map[string]string, len(m.Socials))
			for k, v := range m.Socials {
				socials[k] = v
			}
			m.Socials = socials
		}
		out[i] = m
	}
	return out
}
