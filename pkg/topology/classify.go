package topology

// contactTypeForDigit maps a classification digit to the contact type.
// Digits 2, 7 and 8 are produced by different fault event kinds.
func contactTypeForDigit(digit int) ContactType {
	switch digit {
	case 0:
		return Stratigraphic
	case 2, 7, 8:
		return Fault
	case 3:
		return Unconformity
	case 5:
		return Intrusive
	default:
		return Unknown
	}
}

// ClassifyContact derives the classification digit and contact type from the
// topology codes of an edge's two endpoints.
//
// The final character of each code is a trailing qualifier and is excluded
// from the comparison. The codes are scanned position by position; at the
// first differing position the larger of the two digits is taken and the scan
// stops. Codes that agree over the whole compared length keep digit 0,
// stratigraphic.
func ClassifyContact(topoA, topoB string) (digit int, typ ContactType) {
	n := len(topoA) - 1
	if m := len(topoB) - 1; m < n {
		n = m
	}

	for i := 0; i < n; i++ {
		if topoA[i] == topoB[i] {
			continue
		}
		da := int(topoA[i] - '0')
		db := int(topoB[i] - '0')
		if db > da {
			digit = db
		} else {
			digit = da
		}
		return digit, contactTypeForDigit(digit)
	}
	return 0, Stratigraphic
}
