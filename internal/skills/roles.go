package skills

var roleData = []Role{
	{
		Name: "AI / ML Engineer",
		TechnicalSkills: []string{
			"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
			"Keras", "Scikit-Learn", "NLP", "Computer Vision", "Neural Networks",
			"Data Preprocessing", "Feature Engineering", "Model Deployment",
			"MLOps", "NumPy", "Pandas", "Matplotlib", "SQL", "Git",
			"Docker", "AWS", "REST API", "Flask", "FastAPI", "Linux",
			"Statistics", "Probability", "Linear Algebra", "Calculus",
		},
		SoftSkills: []string{
			"Problem Solving", "Communication", "Teamwork", "Critical Thinking",
			"Research", "Presentation", "Time Management", "Analytical Thinking",
		},
		ATSKeywords: []string{
			"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
			"NLP", "Computer Vision", "Neural Networks", "AWS", "Docker",
			"REST API", "SQL", "Scikit-Learn", "Pandas", "NumPy",
			"Model Deployment", "MLOps", "Data Pipeline", "Feature Engineering",
			"Keras", "Flask", "FastAPI", "Git", "Linux", "Statistics",
		},
		IndustryAvg: Benchmark{Technical: 78, Soft: 72, Projects: 75},
		Description: "Develop machine learning models, analyze data, and deploy AI solutions.",
		SampleJobs: []JobPosting{
			{Title: "AI / ML Engineer", Company: "Google", Location: "New York, NY", Type: "Full Time · Hybrid", Posted: "2 days ago"},
			{Title: "Senior AI / ML Engineer", Company: "Amazon", Location: "Seattle, WA", Type: "Full Time · Remote", Posted: "1 day ago"},
			{Title: "AI / ML Engineer", Company: "Tesla", Location: "San Francisco, CA", Type: "Full Time · Hybrid", Posted: "3 days ago"},
		},
	},
	{
		Name: "Data Scientist",
		TechnicalSkills: []string{
			"Python", "R", "SQL", "Machine Learning", "Deep Learning",
			"Statistics", "Probability", "Data Visualization", "Tableau", "Power BI",
			"Pandas", "NumPy", "Scikit-Learn", "TensorFlow", "PyTorch",
			"NLP", "A/B Testing", "Hypothesis Testing", "Regression",
			"Classification", "Clustering", "Feature Engineering",
			"Big Data", "Spark", "Hadoop", "Excel", "Git", "Jupyter",
		},
		SoftSkills: []string{
			"Communication", "Storytelling", "Problem Solving", "Analytical Thinking",
			"Business Acumen", "Presentation", "Teamwork", "Curiosity",
		},
		ATSKeywords: []string{
			"Python", "R", "SQL", "Machine Learning", "Statistics",
			"Data Visualization", "Tableau", "Power BI", "Pandas", "NumPy",
			"Scikit-Learn", "TensorFlow", "NLP", "A/B Testing", "Regression",
			"Classification", "Big Data", "Spark", "Feature Engineering",
			"Hypothesis Testing", "Deep Learning", "Jupyter", "Git",
		},
		IndustryAvg: Benchmark{Technical: 76, Soft: 70, Projects: 73},
		Description: "Analyze complex datasets to derive insights and build predictive models.",
		SampleJobs: []JobPosting{
			{Title: "Data Scientist", Company: "Meta", Location: "Menlo Park, CA", Type: "Full Time · Hybrid", Posted: "1 day ago"},
			{Title: "Senior Data Scientist", Company: "Netflix", Location: "Los Gatos, CA", Type: "Full Time · Remote", Posted: "3 days ago"},
			{Title: "Data Scientist", Company: "Microsoft", Location: "Redmond, WA", Type: "Full Time · Hybrid", Posted: "2 days ago"},
		},
	},
	{
		Name: "Software Engineer",
		TechnicalSkills: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
			"HTML", "CSS", "React", "Angular", "Node.js", "Express.js",
			"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL",
			"REST API", "GraphQL", "Docker", "Kubernetes", "AWS", "Azure", "GCP",
			"Git", "CI/CD", "Agile", "Scrum", "Linux",
			"Data Structures", "Algorithms", "System Design", "OOP",
			"Microservices", "Testing", "Unit Testing",
		},
		SoftSkills: []string{
			"Communication", "Teamwork", "Problem Solving", "Time Management",
			"Leadership", "Adaptability", "Code Review", "Mentoring",
		},
		ATSKeywords: []string{
			"Python", "Java", "JavaScript", "React", "Node.js", "SQL",
			"REST API", "Docker", "Kubernetes", "AWS", "Git", "CI/CD",
			"Agile", "Microservices", "System Design", "OOP",
			"Data Structures", "Algorithms", "TypeScript", "MongoDB",
			"PostgreSQL", "GraphQL", "Linux", "Testing", "HTML", "CSS",
		},
		IndustryAvg: Benchmark{Technical: 80, Soft: 74, Projects: 78},
		Description: "Design, develop, and maintain software applications and systems.",
		SampleJobs: []JobPosting{
			{Title: "Software Engineer", Company: "Google", Location: "Mountain View, CA", Type: "Full Time · Hybrid", Posted: "1 day ago"},
			{Title: "Senior Software Engineer", Company: "Apple", Location: "Cupertino, CA", Type: "Full Time · On-site", Posted: "2 days ago"},
			{Title: "Software Engineer", Company: "Spotify", Location: "New York, NY", Type: "Full Time · Remote", Posted: "4 days ago"},
		},
	},
	{
		Name: "Cloud Engineer",
		TechnicalSkills: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
			"Ansible", "Jenkins", "CI/CD", "Linux", "Bash", "Python",
			"Networking", "TCP/IP", "DNS", "Load Balancing", "VPN",
			"IAM", "Security", "Monitoring", "CloudWatch", "Prometheus",
			"Grafana", "Serverless", "Lambda", "EC2", "S3", "RDS",
			"VPC", "CloudFormation", "Helm", "Git", "SQL",
		},
		SoftSkills: []string{
			"Problem Solving", "Communication", "Teamwork", "Documentation",
			"Troubleshooting", "Critical Thinking", "Adaptability", "Time Management",
		},
		ATSKeywords: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
			"CI/CD", "Linux", "Python", "Serverless", "Lambda",
			"EC2", "S3", "IAM", "VPC", "CloudFormation", "Jenkins",
			"Monitoring", "Networking", "Bash", "Ansible", "Helm",
			"Security", "Load Balancing", "Git", "SQL",
		},
		IndustryAvg: Benchmark{Technical: 75, Soft: 70, Projects: 72},
		Description: "Design, deploy, and manage cloud infrastructure and services.",
		SampleJobs: []JobPosting{
			{Title: "Cloud Engineer", Company: "Amazon Web Services", Location: "Seattle, WA", Type: "Full Time · Hybrid", Posted: "1 day ago"},
			{Title: "Senior Cloud Engineer", Company: "Microsoft Azure", Location: "Redmond, WA", Type: "Full Time · Remote", Posted: "2 days ago"},
			{Title: "Cloud Infrastructure Engineer", Company: "Google Cloud", Location: "Austin, TX", Type: "Full Time · Hybrid", Posted: "3 days ago"},
		},
	},
	{
		Name: "Data Analyst",
		TechnicalSkills: []string{
			"SQL", "Excel", "Python", "R", "Tableau", "Power BI",
			"Data Visualization", "Statistics", "Data Cleaning",
			"Pandas", "NumPy", "Google Analytics", "Looker",
			"A/B Testing", "Hypothesis Testing", "Regression",
			"ETL", "Data Warehousing", "BigQuery", "Redshift",
			"Reporting", "Dashboard", "VBA", "Google Sheets", "Git",
		},
		SoftSkills: []string{
			"Communication", "Analytical Thinking", "Attention to Detail",
			"Problem Solving", "Presentation", "Storytelling",
			"Business Acumen", "Time Management",
		},
		ATSKeywords: []string{
			"SQL", "Excel", "Python", "Tableau", "Power BI",
			"Data Visualization", "Statistics", "Pandas", "NumPy",
			"A/B Testing", "ETL", "Data Warehousing", "BigQuery",
			"Google Analytics", "Looker", "Reporting", "Dashboard",
			"Regression", "Data Cleaning", "R", "Git",
		},
		IndustryAvg: Benchmark{Technical: 74, Soft: 72, Projects: 70},
		Description: "Collect, process, and analyze data to help organizations make data-driven decisions.",
		SampleJobs: []JobPosting{
			{Title: "Data Analyst", Company: "Uber", Location: "San Francisco, CA", Type: "Full Time · Hybrid", Posted: "2 days ago"},
			{Title: "Senior Data Analyst", Company: "Airbnb", Location: "San Francisco, CA", Type: "Full Time · Remote", Posted: "1 day ago"},
			{Title: "Business Data Analyst", Company: "JPMorgan Chase", Location: "New York, NY", Type: "Full Time · On-site", Posted: "3 days ago"},
		},
	},
}
