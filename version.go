package lrcembed

// Version is the semantic version of lrcembed.
const Version = "0.1.0"
