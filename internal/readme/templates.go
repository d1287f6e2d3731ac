package readme

import "github.com/EricBell/local-project-manager/internal/models"

// templates maps project types to their README skeleton. Types not listed
// here use genericTemplate.
var templates = map[models.ProjectType]string{
	models.TypePython: pythonTemplate,
	models.TypeNodeJS: nodejsTemplate,
	models.TypeRust:   rustTemplate,
	models.TypeGo:     goTemplate,
}

const pythonTemplate = `# {{ .ProjectName }}

## Description

[Add a brief description of your project here]

## Installation

` + "```bash" + `
# Create a virtual environment
python -m venv venv
source venv/bin/activate  # On Windows: venv\Scripts\activate

# Install dependencies
pip install -r requirements.txt
` + "```" + `

## Usage

` + "```python" + `
# Add usage examples here
` + "```" + `

## Dependencies

See ` + "`requirements.txt`" + ` or ` + "`pyproject.toml`" + ` for full list of dependencies.

## License

[Add license information]
`

const nodejsTemplate = `# {{ .ProjectName }}

## Description

[Add a brief description of your project here]

## Installation

` + "```bash" + `
npm install
# or
yarn install
` + "```" + `

## Usage

` + "```bash" + `
npm start
# or
yarn start
` + "```" + `

## Scripts

- ` + "`npm start`" + ` - Start the application
- ` + "`npm test`" + ` - Run tests
- ` + "`npm run build`" + ` - Build for production

## License

[Add license information]
`

const rustTemplate = `# {{ .ProjectName }}

## Description

[Add a brief description of your project here]

## Installation

` + "```bash" + `
cargo build
` + "```" + `

## Usage

` + "```bash" + `
cargo run
` + "```" + `

## Testing

` + "```bash" + `
cargo test
` + "```" + `

## License

[Add license information]
`

const goTemplate = `# {{ .ProjectName }}

## Description

[Add a brief description of your project here]

## Installation

` + "```bash" + `
go build
` + "```" + `

## Usage

` + "```bash" + `
go run main.go
` + "```" + `

## Testing

` + "```bash" + `
go test ./...
` + "```" + `

## License

[Add license information]
`

const genericTemplate = `# {{ .ProjectName }}

## Description

[Add a brief description of your project here]

## Usage

[Add usage instructions here]

## License

[Add license information]
`
