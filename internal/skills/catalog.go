package skills

// courseCatalog maps a canonical skill to the course recommended for it.
var courseCatalog = map[string]Course{
	"AWS": {
		Title:       "AWS Cloud Practitioner",
		Platform:    "Coursera",
		Description: "Learn AWS fundamentals to manage cloud services",
		Icon:        "☁️",
		URL:         "https://www.coursera.org/learn/aws-cloud-practitioner",
	},
	"Docker": {
		Title:       "Docker Mastery",
		Platform:    "Udemy",
		Description: "Master Docker containers and deployment workflows",
		Icon:        "🐳",
		URL:         "https://www.udemy.com/course/docker-mastery/",
	},
	"Deep Learning": {
		Title:       "Deep Learning Specialization",
		Platform:    "Coursera",
		Description: "Machine Learning and Neural Networks specialization by Andrew Ng",
		Icon:        "🧠",
		URL:         "https://www.coursera.org/specializations/deep-learning",
	},
	"TensorFlow": {
		Title:       "TensorFlow Developer Certificate",
		Platform:    "Coursera",
		Description: "Build and train neural networks with TensorFlow",
		Icon:        "🔶",
		URL:         "https://www.coursera.org/professional-certificates/tensorflow-in-practice",
	},
	"PyTorch": {
		Title:       "PyTorch for Deep Learning",
		Platform:    "Udemy",
		Description: "Learn PyTorch from scratch to advanced deep learning",
		Icon:        "🔥",
		URL:         "https://www.udemy.com/course/pytorch-for-deep-learning/",
	},
	"Kubernetes": {
		Title:       "Kubernetes for Beginners",
		Platform:    "Udemy",
		Description: "Learn Kubernetes orchestration and container management",
		Icon:        "⚙️",
		URL:         "https://www.udemy.com/course/learn-kubernetes/",
	},
	"REST API": {
		Title:       "RESTful APIs with Python & Flask",
		Platform:    "Udemy",
		Description: "Build professional REST APIs using Flask",
		Icon:        "🔗",
		URL:         "https://www.udemy.com/course/rest-api-flask-and-python/",
	},
	"SQL": {
		Title:       "SQL Bootcamp",
		Platform:    "Udemy",
		Description: "Complete SQL bootcamp from zero to hero",
		Icon:        "🗄️",
		URL:         "https://www.udemy.com/course/the-complete-sql-bootcamp/",
	},
	"React": {
		Title:       "React - The Complete Guide",
		Platform:    "Udemy",
		Description: "Dive into React.js with hooks, Redux, and Next.js",
		Icon:        "⚛️",
		URL:         "https://www.udemy.com/course/react-the-complete-guide/",
	},
	"JavaScript": {
		Title:       "JavaScript Zero to Hero",
		Platform:    "Coursera",
		Description: "Master JavaScript from fundamentals to advanced concepts",
		Icon:        "📜",
		URL:         "https://www.coursera.org/learn/javascript",
	},
	"Python": {
		Title:       "Python for Everybody",
		Platform:    "Coursera",
		Description: "Complete Python programming specialization",
		Icon:        "🐍",
		URL:         "https://www.coursera.org/specializations/python",
	},
	"Machine Learning": {
		Title:       "Machine Learning by Stanford",
		Platform:    "Coursera",
		Description: "Learn ML fundamentals with Andrew Ng",
		Icon:        "🤖",
		URL:         "https://www.coursera.org/learn/machine-learning",
	},
	"NLP": {
		Title:       "Natural Language Processing Specialization",
		Platform:    "Coursera",
		Description: "Master NLP with sequence models, attention, and transformers",
		Icon:        "💬",
		URL:         "https://www.coursera.org/specializations/natural-language-processing",
	},
	"Computer Vision": {
		Title:       "Computer Vision with OpenCV & Python",
		Platform:    "Udemy",
		Description: "Learn image processing and computer vision",
		Icon:        "👁️",
		URL:         "https://www.udemy.com/course/python-for-computer-vision-with-opencv-and-deep-learning/",
	},
	"Tableau": {
		Title:       "Tableau Data Visualization",
		Platform:    "Coursera",
		Description: "Create stunning data visualizations with Tableau",
		Icon:        "📊",
		URL:         "https://www.coursera.org/learn/data-visualization-tableau",
	},
	"Power BI": {
		Title:       "Microsoft Power BI Desktop",
		Platform:    "Udemy",
		Description: "Master Power BI for business intelligence",
		Icon:        "📈",
		URL:         "https://www.udemy.com/course/microsoft-power-bi-up-running-with-power-bi-desktop/",
	},
	"Terraform": {
		Title:       "Terraform for AWS",
		Platform:    "Udemy",
		Description: "Learn infrastructure as code with Terraform",
		Icon:        "🏗️",
		URL:         "https://www.udemy.com/course/terraform-beginner-to-advanced/",
	},
	"Git": {
		Title:       "Git & GitHub Masterclass",
		Platform:    "Udemy",
		Description: "Version control from beginner to advanced",
		Icon:        "🔀",
		URL:         "https://www.udemy.com/course/git-and-github-masterclass/",
	},
	"Java": {
		Title:       "Java Programming Masterclass",
		Platform:    "Udemy",
		Description: "Complete Java developer course",
		Icon:        "☕",
		URL:         "https://www.udemy.com/course/java-the-complete-java-developer-course/",
	},
	"Data Visualization": {
		Title:       "Data Visualization with Python",
		Platform:    "Coursera",
		Description: "Create compelling data visualizations",
		Icon:        "📊",
		URL:         "https://www.coursera.org/learn/python-for-data-visualization",
	},
	"Statistics": {
		Title:       "Statistics & Probability",
		Platform:    "Khan Academy",
		Description: "Foundational statistics and probability concepts",
		Icon:        "📐",
		URL:         "https://www.khanacademy.org/math/statistics-probability",
	},
	"CI/CD": {
		Title:       "CI/CD with Jenkins & Docker",
		Platform:    "Udemy",
		Description: "Build continuous integration and delivery pipelines",
		Icon:        "🔄",
		URL:         "https://www.udemy.com/course/learn-devops-ci-cd-with-jenkins/",
	},
	"Linux": {
		Title:       "Linux Mastery",
		Platform:    "Udemy",
		Description: "Master the Linux command line",
		Icon:        "🐧",
		URL:         "https://www.udemy.com/course/linux-mastery/",
	},
	"Node.js": {
		Title:       "Node.js - The Complete Course",
		Platform:    "Udemy",
		Description: "Build backend applications with Node.js",
		Icon:        "🟢",
		URL:         "https://www.udemy.com/course/the-complete-nodejs-developer-course/",
	},
	"Spark": {
		Title:       "Apache Spark with Python",
		Platform:    "Udemy",
		Description: "Big data processing with PySpark",
		Icon:        "⚡",
		URL:         "https://www.udemy.com/course/spark-and-python-for-big-data-with-pyspark/",
	},
	"Excel": {
		Title:       "Excel Skills for Business",
		Platform:    "Coursera",
		Description: "Master Excel for data analysis and reporting",
		Icon:        "📗",
		URL:         "https://www.coursera.org/specializations/excel",
	},
	"System Design": {
		Title:       "System Design Interview Prep",
		Platform:    "YouTube",
		Description: "Learn system design principles for scalable applications",
		Icon:        "🏛️",
		URL:         "https://www.youtube.com/results?search_query=system+design",
	},
	"Data Structures": {
		Title:       "Data Structures & Algorithms",
		Platform:    "Coursera",
		Description: "Master DSA for coding interviews",
		Icon:        "🌳",
		URL:         "https://www.coursera.org/specializations/data-structures-algorithms",
	},
	"Algorithms": {
		Title:       "Algorithms Specialization",
		Platform:    "Coursera",
		Description: "Divide & conquer, graph algorithms, and dynamic programming",
		Icon:        "🧩",
		URL:         "https://www.coursera.org/specializations/algorithms",
	},
}
