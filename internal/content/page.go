package content

// Project is one portfolio entry.
type Project struct {
	Name    string
	Summary string
}

// Page is the static copy shared by the web and terminal hosts.
type Page struct {
	Name     string
	AboutMe  string
	Projects []Project
	Email    string
}

// DefaultPage returns the portfolio copy.
func DefaultPage() Page {
	return Page{
		Name:    "Zach Kordas-Potter",
		AboutMe: aboutMe,
		Projects: []Project{
			{Name: "Mail TUI", Summary: projectOne},
			{Name: "Music TUI", Summary: projectTwo},
			{Name: "Game Recommender", Summary: projectThree},
			{Name: "Portfolio", Summary: projectFour},
		},
		Email: "zachkordaspotter@gmail.com",
	}
}

const (
	aboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes. ` +
		`Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a ` +
		`different language, experimenting with tools, or solving tricky problems. ` +
		`When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends, ` +
		`or chasing down a new challenge outside the screen.`

	projectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities ` +
		`using the Charmbracelet TUI framework and go-imap.`

	projectTwo = `A terminal-based music streaming application built in Go with an elegant TUI ` +
		`interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	projectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine ` +
		`similarity to recommend games based on content analysis, featuring interactive data visualizations and ` +
		`real-time filtering by user reviews and ratings.`

	projectFour = `A portfolio website built with Go, Gin and HTMX, with a server-driven typewriter ` +
		`hero, a persisted theme preference and a generated starfield background, plus a terminal edition rendered with tcell.`
)
