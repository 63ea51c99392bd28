package blurtext

// Version is the library release, surfaced by the CLI and the MCP server.
var Version = "0.4.0"
