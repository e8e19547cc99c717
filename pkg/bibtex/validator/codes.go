package validator

// Diagnostic codes. Warnings point out fields worth adding or formatting
// worth fixing; errors are inconsistencies an entry must not ship with.
// Codes are part of the published output format and never get renumbered.
const (
	CodeW001 = "W001"
	CodeW002 = "W002"
	CodeW003 = "W003"
	CodeW004 = "W004"
	CodeW005 = "W005"

	CodeE000 = "E000"
	CodeE001 = "E001"
	CodeE002 = "E002"
	CodeE003 = "E003"
	CodeE004 = "E004"
	CodeE006 = "E006"
	CodeE007 = "E007"
	CodeE008 = "E008"
	CodeE009 = "E009"
	CodeE010 = "E010"
)

// WarningTexts holds the message for each warning code.
var WarningTexts = map[string]string{
	CodeW001: "Missing 'url'. Please add 'url' to PDF or upload PDF to paper repository if possible.",
	CodeW002: "Missing 'pages' for article. Add 'pages = {XX--YY}' to entry if possible.",
	CodeW003: "Missing 'number' for article. Please add issue, i.e., 'number' to entry if possible.",
	CodeW004: "Title capitalization will be lost. Use {{...}} to keep capitalization.",
	CodeW005: "Use 'author' instead of 'authors'.",
}

// ErrorTexts holds the message template for each error code. Templates
// containing %s expect fmt.Sprintf arguments.
var ErrorTexts = map[string]string{
	CodeE000: "Undefined BibTeX string: %s.",
	CodeE001: "Irrelevant field '%s'. Remove field from entry.",
	CodeE002: "Missing field '%s' for entry. Required fields: %s.",
	CodeE003: "Wrong BibTeX key format '%s'. Use '<author><year><venue>' for BibTeX keys, where <year> has 4 digits.",
	CodeE004: "Invalid 'url' to download pdf. Please provide direct url to PDF.",
	CodeE006: "Wrong format for 'volume' of arXiv article. Should be 'arXiv:XXXX.YYYYY'.",
	CodeE007: "Use '--' instead of '-' for page range.",
	CodeE008: "Irrelevant field 'pages' for arXiv preprint.",
	CodeE009: "Irrelevant field 'number' for arXiv preprint.",
	CodeE010: "Use existing @string variable for booktitle/journal. Should be '%s'.",
}
