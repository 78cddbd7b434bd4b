package processor

const namespaceHelp = `bs - Ben's BS Manager

USAGE:
    bs [--local] <command> [options]

GLOBAL OPTIONS:
    --local                   Use local .bs.json in current directory only

COMMANDS:
    add <name> <command...>   Add or replace a command entry
        --notes, -n           Add notes for the command
        --dir, -d <path>      Always run command in specified directory
        --cd                  Always run command in current directory
    rm  <name...>             Remove one or more command entries
    ls  [prefix]              List entries (optional prefix filter)
    completion                Output bash completion script
    mcp                       Start MCP server for AI assistant integration
    help                      Show this help message

Examples:
    bs add hello "echo Hello!" -n "Greeting command"
    bs add deploy "git push" --dir ~/projects/myapp
    bs ls
    bs hello
    bs rm hello`

const demoHelp = "\n" +
	"This is a demo terminal - I re-implemented the basic functionality of bs for demonstration purposes.\n" +
	"\n" +
	"\x1b[36mBasic commands:\x1b[0m\n" +
	"  help      - Show this help\n" +
	"  ls        - List files (demo)\n" +
	"  pwd       - Show current directory\n" +
	"  whoami    - Show current user\n" +
	"  date      - Show current date\n" +
	"  echo      - Echo text to terminal\n" +
	"  clear     - Clear terminal\n" +
	"\n" +
	"\x1b[36mbs commands:\x1b[0m\n" +
	"  bs help   - Show bs help\n" +
	"  bs add    - Add a command\n" +
	"  bs ls     - List stored commands\n" +
	"  bs rm     - Remove a command\n" +
	"\n" +
	"\x1b[33mThis is a demo terminal. Try: echo Hello World!\x1b[0m"

const fakeListing = "\x1b[36mtotal 8\x1b[0m\n" +
	"drwxr-xr-x  3 user user  96 Jan 15 10:30 \x1b[34m.\x1b[0m\n" +
	"drwxr-xr-x  7 user user 224 Jan 15 10:25 \x1b[34m..\x1b[0m\n" +
	"-rw-r--r--  1 user user 156 Jan 15 10:30 \x1b[32m.bs.json\x1b[0m\n" +
	"-rw-r--r--  1 user user  24 Jan 15 10:25 demo.txt\n" +
	"drwxr-xr-x  2 user user  64 Jan 15 10:29 \x1b[34mprojects\x1b[0m"

// Banner is shown when a session starts: the namespace help plus a hint.
const Banner = namespaceHelp + "\n\n\x1b[33mTry: bs add hello \"echo Hello World!\" -n \"My first command\"\x1b[0m\n"
