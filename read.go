package spectrumreader

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

const (
	maxLineLength = 1024 * 1024
	byteOrderMark = "\ufeff"
)

// dataLine is one line of a data block with its position in the file.
type dataLine struct {
	num  int
	text string
}

// jcampBlock is the single data block of a JCAMP-DX file together with the header that controls it.
type jcampBlock struct {
	header    HeaderFields
	dataLabel string // dataLabel is the normalized label that opened the block.
	variant   string // variant is the normalized variable list, e.g. "(X++(Y..Y))".
	startLine int
	lines     []dataLine
}

type readState int

const (
	stateHeader readState = iota
	stateData
	stateTrailer
	stateDone
)

// readJcamp splits JCAMP-DX content into its header and data block.  Files holding more than one spectrum are
// rejected.
func readJcamp(content []byte) (jcampBlock, error) {
	var block jcampBlock

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	labelLines := make(map[string]int)
	state := stateHeader
	lastLabel := ""
	seenTitle := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), byteOrderMark))

		if trimmed == "" || strings.HasPrefix(trimmed, "$$") {
			continue
		}

		label, value, labeled := splitLabeled(trimmed)

		if state == stateDone {
			if labeled && (label == labelTitle || dataLabels[label]) {
				return jcampBlock{}, decodeErrorf(ErrUnsupportedEncoding, lineNo, "multi-block files are not supported")
			}
			continue
		}

		if !labeled {
			switch state {
			case stateData:
				block.lines = append(block.lines, dataLine{num: lineNo, text: stripComment(trimmed)})
			case stateHeader, stateTrailer:
				block.header.appendTo(lastLabel, stripComment(trimmed))
			}
			continue
		}

		switch {
		case label == labelEnd:
			state = stateDone
			continue

		case label == labelTitle && seenTitle:
			return jcampBlock{}, decodeErrorf(ErrUnsupportedEncoding, lineNo, "multi-block files are not supported")

		case label == labelNTuples:
			return jcampBlock{}, decodeErrorf(ErrUnsupportedEncoding, lineNo, "NTUPLES blocks are not supported")

		case dataLabels[label]:
			if block.dataLabel != "" {
				return jcampBlock{}, decodeErrorf(ErrUnsupportedEncoding, lineNo, "more than one data block")
			}

			block.dataLabel = label
			block.variant = normalizeVariant(value)
			block.startLine = lineNo
			state = stateData

		default:
			if label == labelTitle {
				seenTitle = true
			}

			if state == stateData {
				state = stateTrailer
			}

			block.header.set(label, value)
			labelLines[label] = lineNo
		}

		lastLabel = label
	}

	if err := scanner.Err(); err != nil {
		return jcampBlock{}, fmt.Errorf("error while scanning line %d: %w", lineNo+1, err)
	}

	if err := block.header.parseNumbers(labelLines); err != nil {
		return jcampBlock{}, err
	}

	if n, ok := block.header.number(labelBlocks); ok && n > 1 {
		return jcampBlock{}, &DecodeError{Kind: ErrUnsupportedEncoding, Line: labelLines[labelBlocks], Field: labelBlocks, Msg: "multi-block files are not supported"}
	}

	if block.dataLabel == "" {
		return jcampBlock{}, decodeErrorf(ErrUnrecognizedFormat, 0, "no data block found")
	}

	return block, nil
}
