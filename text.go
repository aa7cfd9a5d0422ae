package main

// Project is one card in the work grid on the home page.
type Project struct {
	Name        string
	Tagline     string
	Description string
	URL         string
}

// Job is one row of the work history fragment.
type Job struct {
	Company     string
	Role        string
	Description string
	Context     string
}

var (
	AboutMe = `I'm a Solutions Engineer who builds AI-native products. I think in business outcomes first
	and code second, and most of what lives here started as a demo I wanted to exist.
	The blog has my weekly takes: short, opinionated, and under 500 words.`

	Tagline = "Talk to an AI. Build a micro-tool."

	Projects = []Project{
		{
			Name:        "Printing in 2D",
			Tagline:     "Talk to an AI. Build a micro-tool.",
			Description: "Describe a repetitive task to an AI avatar and it designs a visual workflow diagram in real time.",
			URL:         "https://printing-in-2d.vercel.app",
		},
		{
			Name:        "OpenExchange Demo",
			Tagline:     "AI-Powered Call Intelligence",
			Description: "Real-time AI analysis for investor calls. Detects key statements, risk disclosures, and commitments as they happen.",
			URL:         "https://openexchange-demo.vercel.app",
		},
		{
			Name:        "Spoke",
			Tagline:     "Screenshot it. Describe it. Ship it.",
			Description: "Build internal tools in 60 seconds. Paste a screenshot, describe what you need, get a working tracker.",
			URL:         "https://spoke-pi.vercel.app",
		},
		{
			Name:        "ESG Mesh",
			Tagline:     "Sustainability data, connected",
			Description: "Maps ESG disclosures across frameworks so one answer can satisfy CSRD, SEC and ISSB requests.",
			URL:         "https://esg-mesh.vercel.app",
		},
		{
			Name:        "Value Calculator",
			Tagline:     "Business cases in minutes",
			Description: "Turns discovery notes into an ROI model a buyer can take to their CFO.",
			URL:         "https://value-calculator-eta.vercel.app",
		},
	}

	WorkHistory = []Job{
		{
			Company:     "Datamaran",
			Role:        "Senior Solution Engineer",
			Description: "AI-powered ESG analytics. Closed $350K+ ARR with Fortune 500 clients across CSRD, SEC, and ISSB compliance.",
			Context:     "Market-driven exit",
		},
		{
			Company:     "Workiva",
			Role:        "Solution Engineer",
			Description: "Enterprise reporting & ESG. Won $700K+ ARR. ERP integration demos (SAP, Oracle, Workday) for Fortune 500.",
			Context:     "Market-driven exit",
		},
		{
			Company:     "Blend",
			Role:        "Mid-Market Solution Engineer",
			Description: "Digital lending platform. Beat quota 4/5 quarters. API demos with FIS, Jack Henry, Fiserv.",
			Context:     "Mid-market to enterprise",
		},
		{
			Company:     "Infor",
			Role:        "Product Solutions Analyst",
			Description: "Enterprise ERP & HCM. 95% NPS. Healthcare and Manufacturing verticals. First SE role.",
			Context:     "ERP to fintech",
		},
	}
)
