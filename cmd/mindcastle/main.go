// Mind Castle: a personal journaling MCP server.
//
// Thoughts are captured, sorted into rooms, and persisted locally. The
// server speaks MCP over stdio so any AI tool can act as the front end;
// the same commands are available directly from the terminal.
//
// Usage:
//
//	mindcastle serve             # Start MCP server (stdio transport)
//	mindcastle add "a thought"   # Capture a thought from the terminal
//	mindcastle update            # Update to the latest version
package main

func main() {
	Execute()
}
