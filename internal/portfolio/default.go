package portfolio

// Default returns the built-in portfolio. Each call returns fresh slices so
// callers may modify the result.
func Default() Content {
	return Content{
		Profile: Profile{
			Initials: "JL",
			Name:     "Jason Lee.",
			Greeting: "Hello World, my name is",
			Roles:    []string{"Founder", "Software Engineer", "ML Engineer"},
			Tagline:  "I am an incoming Software Engineer @Stripe passionate about building safe & socially impactful AI software",
			Bio: []string{
				"Hello! My name is Jason and I am a Master's in AI student @Duke (grad. Spring '25). I started coding in high school and have since developed a passion for startups. I believe AI can help tackle some of our world's biggest challenges and aspire to build software that unlocks its potential. At the same time, I aim to prevent its misuse through research & commercialization of AI safety.",
				"Fast-forward to today, and I have had the privilege of interning at 3 different startups, gaining experience in software, data science and ML. I'm also founding Ganglion Medical, a mobile medical device for ICU patient monitoring and concussion testing.",
			},
			Technologies: []string{
				"TypeScript",
				"React/React Native",
				"Python",
				"PostgreSQL",
				"Flask/FastAPI",
				"Google Cloud",
				"PyTorch",
				"Transformers",
			},
			Image:       "/images/IMG_4582.jpg",
			ResumeURL:   "https://drive.google.com/file/d/1o4XdAh7QnV5fbXZ6djk2Wwk5Fx2BEtqO/view?usp=sharing",
			Email:       "cl491@duke.edu",
			ContactNote: "I am not currently looking for new opportunities, but I would be happy to connect with anyone! Please reach out via email.",
		},
		Experiences: []Experience{
			{
				Company:  "Hotplate",
				Role:     "Software Engineer Intern",
				Period:   "May - August 2023",
				Location: "San Francisco, CA",
				Description: []string{
					"Developed automated CRM tool with OpenAI API that classifies lead dropout/conversion using outbound message history",
					"Decreased time spent manually evaluating leads by 30% with a LangChain LLM agent that analyzes a lead's online store",
				},
			},
			{
				Company:  "Uizard",
				Role:     "ML Research Assistant",
				Period:   "September - December 2020",
				Location: "Remote",
				Description: []string{
					"Researched methods to improve the Transformer architecture's UI layout understanding",
					"Implemented novel tree-based positional encoding for the LayoutLM architecture",
					"Optimized memory usage by 80% via pruning outlier nodes, reducing dimensionality & filtering irrelevant tokens",
				},
			},
			{
				Company:  "Lane Crawford",
				Role:     "Associate Data Scientist",
				Period:   "April - December 2020",
				Location: "Hong Kong SAR",
				Description: []string{
					"Improved new product demand forecasting by 15% using scikit-learn to build an ensemble of ARIMA and Random Forest models",
					"Implemented an image retrieval model using PyTorch that matches user outfits to similar internal products",
					"Received return offer for a full-time position after summer internship",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "Ganglion Medical",
				Description: "A mobile medical device that analyzes the pupillary light reflex to help sports teams and neurocritical care units detect brain stroke & concussions. Trained & curated dataset for a video pupil tracking algorithm with 94% precision.",
				Image:       "/images/ganglion.png?height=400&width=600",
				Tags:        []string{"TypeScript", "Flask", "Google Cloud", "Firebase", "PyTorch"},
				Links:       Links{Live: "https://www.ganglion.ai/"},
			},
			{
				Title:       "Evalon",
				Description: "A chatbot QA software that enables enterprise clients to stress test their LLMs before production. Winner of Best LLM Evaluations @Duke AI Hackathon 2024.",
				Image:       "/images/evalon_manual_qa.png?height=400&width=600",
				Tags:        []string{"React", "NextJS", "FastAPI", "Supabase", "OpenAI"},
				Links: Links{
					GitHub: "https://github.com/choonghwanlee/llm_qa",
					Live:   "https://devpost.com/software/evalon-automated-stress-testing-qa-of-chatbots",
				},
			},
		},
	}
}
