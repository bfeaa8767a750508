package taxonomy

var defaultTaxonomy = New(
	[]Category{
		{Name: "programming", Skills: []string{"Python", "Java", "JavaScript", "C++", "Go", "Rust", "TypeScript"}},
		{Name: "frontend", Skills: []string{"React", "Vue", "Angular", "HTML", "CSS", "JavaScript", "TypeScript"}},
		{Name: "backend", Skills: []string{"Node.js", "Django", "Flask", "Spring", "Express", "FastAPI"}},
		{Name: "database", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch"}},
		{Name: "cloud", Skills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform"}},
		{Name: "mobile", Skills: []string{"React Native", "Flutter", "iOS", "Android", "Swift", "Kotlin"}},
		{Name: "ai_ml", Skills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy"}},
		{Name: "devops", Skills: []string{"Jenkins", "GitLab CI", "GitHub Actions", "Ansible", "Docker"}},
		{Name: "soft_skills", Skills: []string{"Project Management", "Teamwork", "Communication", "Leadership", "Problem Solving"}},
	},
	map[string][]string{
		"React":              {"Vue", "Angular", "JavaScript"},
		"Vue":                {"React", "Angular", "JavaScript"},
		"Angular":            {"React", "Vue", "JavaScript"},
		"JavaScript":         {"TypeScript", "React", "Vue"},
		"TypeScript":         {"JavaScript", "React", "Vue"},
		"Python":             {"Java", "C++", "Go"},
		"Java":               {"Python", "C++", "Go"},
		"C++":                {"Python", "Java", "Go"},
		"MySQL":              {"PostgreSQL", "MongoDB", "Redis"},
		"PostgreSQL":         {"MySQL", "MongoDB", "Redis"},
		"MongoDB":            {"MySQL", "PostgreSQL", "Redis"},
		"AWS":                {"Azure", "GCP", "Docker"},
		"Azure":              {"AWS", "GCP", "Docker"},
		"GCP":                {"AWS", "Azure", "Docker"},
		"Docker":             {"Kubernetes", "AWS", "Azure"},
		"Kubernetes":         {"Docker", "AWS", "Azure"},
		"Project Management": {"Teamwork", "Communication", "Leadership"},
		"Teamwork":           {"Project Management", "Communication", "Leadership"},
		"Communication":      {"Project Management", "Teamwork", "Leadership"},
	},
	[][]string{
		{"machine learning", "ml", "ai", "artificial intelligence", "机器学习"},
		{"sql", "database", "mysql", "postgresql"},
		{"spark", "apache spark", "spark streaming"},
		{"kafka", "apache kafka"},
		{"tensorflow", "tf"},
		{"pytorch", "torch"},
		{"scikit-learn", "sklearn", "scikit learn"},
		{"docker", "container"},
		{"kubernetes", "k8s"},
		{"aws", "amazon web services", "amazon"},
		{"distributed systems", "distributed", "microservices", "分布式系统"},
		{"big data", "data processing", "etl", "batch processing", "大数据处理"},
		{"a/b testing", "ab testing", "ab test", "experiment"},
		{"coding standards", "code standards", "best practices", "编程规范"},
		{"design patterns", "patterns", "设计模式"},
		{"statistics", "statistical methods", "statistical analysis", "统计方法"},
	},
	map[string][]string{
		"machine learning":            {"tensorflow", "pytorch", "scikit-learn", "mlflow", "ml", "ai", "deep learning"},
		"机器学习算法":                      {"tensorflow", "pytorch", "scikit-learn", "mlflow", "machine learning", "ml", "ai"},
		"statistics":                  {"statistical", "data analysis", "analytics"},
		"统计方法":                        {"statistics", "statistical", "data analysis", "analytics"},
		"distributed systems":         {"docker", "kubernetes", "k8s", "microservices", "distributed"},
		"分布式系统":                       {"distributed", "microservices", "docker", "kubernetes", "k8s", "scaling"},
		"big data":                    {"spark", "kafka", "hadoop", "etl", "data processing"},
		"大数据处理":                       {"spark", "kafka", "hadoop", "big data", "etl", "data processing"},
		"data pipelines":              {"spark", "kafka", "hadoop", "etl", "data processing"},
		"a/b testing":                 {"experiment", "testing", "ab test", "ab testing"},
		"coding standards":            {"code review", "tdd", "best practices"},
		"design patterns":             {"patterns", "architecture", "coding standards"},
		"software development":        {"python", "java", "scala", "programming", "coding"},
		"information retrieval":       {"search", "elasticsearch", "solr"},
		"natural language processing": {"nlp", "text processing", "language model"},
		"system design":               {"architecture", "design"},
		"programming languages":       {"python", "java", "scala", "programming"},
	},
	map[string][]string{
		"tensorflow":   {"machine learning", "ml", "ai"},
		"tf":           {"machine learning", "ml", "ai"},
		"pytorch":      {"machine learning", "ml", "ai"},
		"torch":        {"machine learning", "ml", "ai"},
		"scikit-learn": {"machine learning", "ml", "ai"},
		"sklearn":      {"machine learning", "ml", "ai"},
		"spark":        {"big data", "data processing", "etl"},
		"apache spark": {"big data", "data processing", "etl"},
		"kafka":        {"big data", "data processing", "streaming"},
		"hadoop":       {"big data", "data processing", "distributed"},
		"docker":       {"distributed systems", "microservices"},
		"kubernetes":   {"distributed systems", "microservices"},
		"k8s":          {"distributed systems", "microservices"},
		"aws":          {"cloud", "distributed systems"},
		"amazon web services": {"cloud", "distributed systems"},
		"design patterns":     {"coding standards", "best practices"},
		"patterns":            {"coding standards", "best practices"},
		"code review":         {"coding standards", "best practices"},
		"tdd":                 {"coding standards", "best practices"},
	},
)

// Default returns the built-in taxonomy. The returned value is shared
// and must be treated as read-only.
func Default() *Taxonomy {
	return defaultTaxonomy
}
