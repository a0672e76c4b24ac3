// Package workshop defines the workshop's tool checks and runs them in order.
package workshop

import (
	"github.com/aise-workshop/envcheck/pkg/check"
	"github.com/aise-workshop/envcheck/pkg/cmdcheck"
	"github.com/aise-workshop/envcheck/pkg/output"
)

// Title is printed in the report banner.
const Title = "AI4SE Workshop - Environment Check"

// Tool is one entry in the check catalog.
type Tool struct {
	Check    check.Checker
	Required bool
	Hints    output.Hints
}

// Part groups the tools needed for one part of the workshop.
type Part struct {
	Title      string
	Repository string // empty when the part has no exercise repository
	Tools      []Tool
}

// Catalog returns the workshop parts in the order they are checked.
func Catalog() []Part {
	return []Part{
		{
			Title:      "Part 1: Agent Backend Demo",
			Repository: "https://github.com/WeiZhang101/agent-backend-demo",
			Tools: []Tool{
				{
					Check:    cmdcheck.Java(),
					Required: true,
					Hints: output.Hints{
						Winget: "winget install Oracle.JDK.21",
						Choco:  "choco install openjdk --version=21.0.0",
						Link:   "https://www.oracle.com/java/technologies/downloads/#java21",
						Note:   "OpenJDK alternatives: Temurin, Microsoft Build of OpenJDK",
					},
				},
				{
					Check:    cmdcheck.Docker(),
					Required: false,
					Hints: output.Hints{
						Winget: "winget install Docker.DockerDesktop",
						Choco:  "choco install docker-desktop",
						Link:   "https://www.docker.com/products/docker-desktop/",
						Note:   "Optional for PostgreSQL; required for running databases locally",
					},
				},
			},
		},
		{
			Title:      "Part 2: LangGraph Practice",
			Repository: "https://github.com/demongodYY/OOCL_langgraph",
			Tools: []Tool{
				{
					Check:    cmdcheck.Python(),
					Required: true,
					Hints: output.Hints{
						Winget: "winget install Python.Python.3.12",
						Choco:  "choco install python312",
						Link:   "https://www.python.org/downloads/",
						Note:   "After installation, create virtual environment: python -m venv venv",
					},
				},
			},
		},
		{
			Title:      "Part 3: JSP to Spring Boot Practice",
			Repository: "https://github.com/aise-workshop/jsp2spring-boot-practise",
			Tools: []Tool{
				{
					Check:    cmdcheck.Maven(),
					Required: true,
					Hints: output.Hints{
						Winget: "winget install Apache.Maven",
						Choco:  "choco install maven",
						Link:   "https://maven.apache.org/download.cgi",
						Note:   "Required for Spring Boot: mvn spring-boot:run",
					},
				},
			},
		},
		{
			Title:      "Advanced: Tibco BW Migration CLI",
			Repository: "https://github.com/aise-workshop/tibco-movie-practise",
			Tools: []Tool{
				{
					Check:    cmdcheck.Node(),
					Required: false,
					Hints: output.Hints{
						Winget: "winget install OpenJS.NodeJS.LTS",
						Choco:  "choco install nodejs-lts",
						Link:   "https://nodejs.org/",
						Note:   "Optional for advanced exercises; includes npm for TypeScript",
					},
				},
			},
		},
		{
			Title: "Essential Tools",
			Tools: []Tool{
				{
					Check:    cmdcheck.Git(),
					Required: true,
					Hints: output.Hints{
						Winget: "winget install Git.Git",
						Choco:  "choco install git",
						Link:   "https://git-scm.com/downloads",
						Note:   "Required for cloning repositories",
					},
				},
			},
		},
	}
}
