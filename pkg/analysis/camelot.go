package analysis

// camelotWheel maps conventional key names to Camelot wheel codes for
// harmonic mixing.
var camelotWheel = map[string]string{
	"C major":  "8B",
	"A minor":  "8A",
	"G major":  "9B",
	"E minor":  "9A",
	"D major":  "10B",
	"B minor":  "10A",
	"A major":  "11B",
	"F# minor": "11A",
	"E major":  "12B",
	"C# minor": "12A",
	"B major":  "1B",
	"G# minor": "1A",
	"F# major": "2B",
	"D# minor": "2A",
	"Db major": "3B",
	"Bb minor": "3A",
	"Ab major": "4B",
	"F minor":  "4A",
	"Eb major": "5B",
	"C minor":  "5A",
	"Bb major": "6B",
	"G minor":  "6A",
	"F major":  "7B",
	"D minor":  "7A",
}

// CamelotFromKey maps a key label like "A minor" to its Camelot code.
// Unmapped labels return "Unknown".
func CamelotFromKey(key string) string {
	if code, ok := camelotWheel[key]; ok {
		return code
	}
	return "Unknown"
}
