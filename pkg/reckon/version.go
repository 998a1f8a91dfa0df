package reckon

// Version is the reckon release version.
const Version = "1.0.0"
