package dto

// DateLayout is the wire format for calendar dates. Dates are stored with no
// time component, so RFC 3339 timestamps are not used.
const DateLayout = "2006-01-02"
