// Package validator checks parsed bibliographies for consistency and
// completeness.
//
// # Passes
//
// Validation runs in two phases. A document-wide macro-string pass walks
// journal and booktitle fields first: bare identifiers must reference a
// declared @string (E000), literals that spell out a declared string's
// value should use the macro instead (E010), and resolvable references get
// bound to their declared values. Then three per-entry passes run in
// sequence: field checks, citation-key checks, and link checks.
//
// # Diagnostics
//
// Every finding carries a stable code. Warnings (W001..W005) flag fields
// worth adding and formatting worth fixing; errors (E000..E010) flag
// inconsistencies that fail the run. Errors are sorted by source line with
// discovery order breaking ties; warnings stay in discovery order.
//
// # Field rules
//
// Required and optional fields depend on the entry type. Articles get
// stricter per-venue requirements when their journal field references a
// known venue macro, and entries whose journal reads "arXiv preprint"
// follow preprint rules: an arXiv identifier as the volume and neither
// pages nor an issue number.
//
// # Link probing
//
// Entries should link to a downloadable PDF. URLs that end in ".pdf" and
// "proceedings:" references pass on their text alone; anything else gets a
// HEAD probe expecting an application/pdf content type. Probing is skipped
// for large bibliographies unless configured otherwise.
package validator
