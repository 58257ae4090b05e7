package constants

// FileSections is the closed set of FourCC tags a WSM container may carry.
// Tags shorter than 4 characters are space padded.
var FileSections = []string{"VERS", "GUID", "INST", "WAM ", "IMG "}

// FileSignatures are the two accepted magic values at offset 0 of a container.
var FileSignatures = []string{"ATTM", "SNGM"}

// FileExtension is the container file extension, matched case insensitively.
const FileExtension = "WSM"

// FourCCSize is the byte width of a section tag and of the signature.
const FourCCSize = 4
