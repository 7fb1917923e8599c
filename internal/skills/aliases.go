package skills

// skillAliases maps lowercase informal tokens to canonical skill names.
// Many-to-one: several aliases may point at the same canonical skill.
var skillAliases = map[string]string{
	"ml":                           "Machine Learning",
	"dl":                           "Deep Learning",
	"ai":                           "Artificial Intelligence",
	"nlp":                          "NLP",
	"cv":                           "Computer Vision",
	"js":                           "JavaScript",
	"ts":                           "TypeScript",
	"py":                           "Python",
	"tf":                           "TensorFlow",
	"k8s":                          "Kubernetes",
	"postgres":                     "PostgreSQL",
	"mongo":                        "MongoDB",
	"aws":                          "AWS",
	"gcp":                          "GCP",
	"react.js":                     "React",
	"reactjs":                      "React",
	"node":                         "Node.js",
	"nodejs":                       "Node.js",
	"express":                      "Express.js",
	"expressjs":                    "Express.js",
	"restful api":                  "REST API",
	"restful apis":                 "REST API",
	"rest apis":                    "REST API",
	"rest":                         "REST API",
	"ci cd":                        "CI/CD",
	"cicd":                         "CI/CD",
	"continuous integration":       "CI/CD",
	"continuous deployment":        "CI/CD",
	"oop":                          "OOP",
	"object oriented":              "OOP",
	"scikit learn":                 "Scikit-Learn",
	"sklearn":                      "Scikit-Learn",
	"power bi":                     "Power BI",
	"powerbi":                      "Power BI",
	"a/b test":                     "A/B Testing",
	"ab testing":                   "A/B Testing",
	"cloud watch":                  "CloudWatch",
	"data structure":               "Data Structures",
	"data structures":              "Data Structures",
	"algorithm":                    "Algorithms",
	"algorithms":                   "Algorithms",
	"system design":                "System Design",
	"micro services":               "Microservices",
	"microservice":                 "Microservices",
	"html5":                        "HTML",
	"css3":                         "CSS",
	"html/css":                     "HTML",
	"c sharp":                      "C#",
	"csharp":                       "C#",
	"cpp":                          "C++",
	"sql server":                   "SQL",
	"mysql":                        "MySQL",
	"postgresql":                   "PostgreSQL",
	"big data":                     "Big Data",
	"data viz":                     "Data Visualization",
	"data visualization":           "Data Visualization",
	"natural language processing":  "NLP",
	"convolutional neural network": "Neural Networks",
	"cnn":                          "Neural Networks",
	"rnn":                          "Neural Networks",
	"recurrent neural network":     "Neural Networks",
	"neural net":                   "Neural Networks",
	"neural network":               "Neural Networks",
}
