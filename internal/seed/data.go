package seed

import "github.com/johnwards/blogseed/internal/domain"

type userDef struct {
	fullName string
	username string
	password string
	email    string
	roles    []string
}

var defaultUsers = []userDef{
	{fullName: "Jane Doe", username: "jane_admin", password: "kitten", email: "jane_admin@symfony.com", roles: []string{domain.RoleAdmin}},
	{fullName: "Tom Doe", username: "tom_admin", password: "kitten", email: "tom_admin@symfony.com", roles: []string{domain.RoleAdmin}},
	{fullName: "John Doe", username: "john_user", password: "kitten", email: "john_user@symfony.com", roles: []string{domain.RoleUser}},
}

var defaultTags = []string{
	"lorem",
	"ipsum",
	"consectetur",
	"adipiscing",
	"incididunt",
	"labore",
	"voluptate",
	"dolore",
	"pariatur",
}

// postTitles are seeded in order; the post at index i is dated i days ago.
var postTitles = []string{
	"Unlock Lightning-Fast Transactions: How Upsun Powers High-Volume Apps",
	"The API-First Revolution: Why Modern Teams Choose Upsun for Shared Services",
	"Decoupled Web UIs Made Easy: Upsun's Secret Sauce for Jamstack & SPAs",
	"Cloud Migration Without the Headaches: Upsun's Proven Path to Modernization",
	"AI Agents That Actually Work: Building Smarter Apps with Upsun",
	"Stop Flying Blind: How Upsun Delivers Real Monitoring & Observability",
}

// summaryTexts feeds both post summaries and comment bodies.
var summaryTexts = []string{
	"Discover how Upsun enables blazing-fast, resilient, and scalable transactional applications for the most demanding workloads.",
	"Learn how Upsun's API-first approach empowers microservices and shared services to scale with your business needs.",
	"Explore how Upsun helps you build interactive, decoupled web experiences using Jamstack, SPAs, and modern web architectures.",
	"See how Upsun streamlines cloud migration, from lift-and-shift to full modernization and replatforming.",
	"Find out how Upsun accelerates the development and deployment of AI agents and applications in real-world environments.",
	"Understand how developers use Upsun to monitor, manage, and gain deep observability into their applications.",
}

// postContents are markdown bodies.
var postContents = []string{
	`**Is your app ready for a tidal wave of users?**

Upsun is purpose-built for high-volume transactional applications that demand speed, scalability, and resilience. Whether you're processing thousands of payments per second or handling real-time data streams, Upsun's cloud-native architecture ensures your workloads stay fast and reliable—no matter the scale.

- **Auto-scaling** to handle unpredictable spikes
- **Zero-downtime deployments** for continuous innovation
- **Built-in failover** and disaster recovery

> "With Upsun, we scaled from 10,000 to 1 million transactions per day—without a single hiccup."  
— CTO, Fintech Startup

Ready to future-proof your transactional workloads? [Learn more at Upsun.com](https://upsun.com)`,
	`**Why are top teams going API-first?**

Upsun makes it easy to design, deploy, and manage shared services with an API-first mindset. Our platform is optimized for microservices architectures, letting you scale services up or down instantly and integrate with any stack.

- **OpenAPI & GraphQL** support out of the box
- **Service discovery** and versioning made simple
- **Seamless scaling** for every endpoint

> "Upsun's API-first tools let us launch new services in days, not weeks."  
— Lead Engineer, SaaS Provider

Build the backbone of your digital business with Upsun. [See how at Upsun.com](https://upsun.com)`,
	`**Want a web experience users love?**

Upsun empowers you to build decoupled, interactive web UIs—whether you're using Jamstack, SPAs, or embedded mobile components. Deliver lightning-fast, responsive apps directly in the browser or on any device.

- **Progressive Web App (PWA) support**
- **Instant global delivery** via CDN
- **Developer-friendly workflows** for rapid iteration

> "Our Jamstack site on Upsun loads in under a second, anywhere in the world."  
— Product Manager, E-commerce

Delight your users with modern web experiences. [Get started at Upsun.com](https://upsun.com)`,
	`**Migrating to the cloud? Don't risk downtime!**

Upsun is your partner for seamless cloud migration and modernization. Move workloads, replatform, or rebuild with confidence—our platform supports every stage of your cloud journey.

- **Automated migration tools**
- **Support for lift-and-shift, modernization, and replatforming**
- **Unified management for hybrid and multi-cloud**

> "We migrated 50+ apps to the cloud with Upsun—on time and under budget."  
— IT Director, Enterprise Retail

Make your cloud move a success. [See migration solutions at Upsun.com](https://upsun.com)`,
	`**Ready to unleash AI in your business?**

Upsun accelerates the development and deployment of AI agents and applications. Build autonomous or semi-autonomous software that perceives, decides, and acts—powered by the latest AI techniques.

- **Integrated ML/AI pipelines**
- **Real-time data processing**
- **Secure, scalable deployment for AI workloads**

> "Upsun helped us launch AI-powered agents that automate 80% of our support tickets."  
— Head of Digital, Customer Service Platform

Bring your AI ideas to life. [Explore AI with Upsun.com](https://upsun.com)`,
	`**Are you flying blind in production?**

With Upsun, developers get real-time monitoring and deep observability for every app and service. Track performance, catch issues before users do, and get actionable insights—all in one place.

- **Unified dashboards** for all your apps
- **Proactive alerts** and anomaly detection
- **Seamless integration with popular observability tools**

> "We cut our incident response time in half with Upsun's monitoring tools."  
— DevOps Lead, SaaS Platform

Take control of your apps. [See observability in action at Upsun.com](https://upsun.com)`,
}

// Users returns a copy of the seeded usernames in load order.
func Users() []string {
	names := make([]string, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		names = append(names, u.username)
	}
	return names
}

// Tags returns a copy of the seeded tag names in load order.
func Tags() []string {
	return append([]string(nil), defaultTags...)
}

// Titles returns a copy of the seeded post titles in load order.
func Titles() []string {
	return append([]string(nil), postTitles...)
}

// Summaries returns a copy of the summary pool.
func Summaries() []string {
	return append([]string(nil), summaryTexts...)
}

// Contents returns a copy of the post content pool.
func Contents() []string {
	return append([]string(nil), postContents...)
}
