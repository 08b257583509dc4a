package icontheme

// MatchesSize reports whether d holds icons usable at size without scaling.
// Only scale-1 directories match.
func (d Directory) MatchesSize(size int) bool {
	if d.Scale != 1 {
		return false
	}

	switch d.Type {
	case DirFixed:
		return d.Size == size
	case DirScalable:
		return d.MinSize <= size && size <= d.MaxSize
	default:
		return d.Size-d.Threshold <= size && size <= d.Size+d.Threshold
	}
}

// SizeDistance is how far d is from size, 0 meaning a match
func (d Directory) SizeDistance(size int) int {
	switch d.Type {
	case DirFixed:
		return abs(d.Size*d.Scale - size)
	case DirScalable:
		if size < d.MinSize*d.Scale {
			return d.MinSize*d.Scale - size
		}
		if size > d.MaxSize*d.Scale {
			return size - d.MaxSize*d.Scale
		}
		return 0
	default:
		if size < (d.Size-d.Threshold)*d.Scale {
			return d.MinSize*d.Scale - size
		}
		if size > (d.Size+d.Threshold)*d.Scale {
			return size - d.MaxSize*d.Scale
		}
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
