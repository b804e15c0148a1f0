package try

// Version of the try module.
const Version = "0.4.0"
