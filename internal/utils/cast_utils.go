package utils

import "strconv"

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

// LeadingInt parses the leading digit run of str, tolerating trailing junk
// the way C's stoi does. Returns defaultValue when str has no leading digits.
func LeadingInt(str string, defaultValue int) int {
	i := 0
	for i < len(str) && str[i] >= '0' && str[i] <= '9' {
		i++
	}
	if i == 0 {
		return defaultValue
	}
	result, err := strconv.Atoi(str[:i])
	if err != nil {
		return defaultValue
	}
	return result
}
