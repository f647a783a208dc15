package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Рамки на число экзаменов: минимум три, сверх трех - с подтверждением
const (
	minExams = 3
	maxExams = 5
)

func readLine(in *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func readInt(in *bufio.Scanner, out io.Writer, label string) (int, error) {
	line, err := readLine(in, out, label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func readYesNo(in *bufio.Scanner, out io.Writer, label string) (bool, error) {
	answer, err := readLine(in, out, label)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "да" || answer == "д" || answer == "yes" || answer == "y", nil
}

// readExamCount запрашивает число экзаменов: не меньше трех, не больше пяти,
// больше трех - только после подтверждения
func readExamCount(in *bufio.Scanner, out io.Writer) (int, error) {
	for {
		count, err := readInt(in, out, fmt.Sprintf("Количество экзаменов (%d-%d): ", minExams, maxExams))
		if err != nil {
			return 0, err
		}

		if count < minExams {
			fmt.Fprintf(out, "Экзаменов должно быть не меньше %d\n", minExams)
			continue
		}
		if count > maxExams {
			fmt.Fprintf(out, "Экзаменов должно быть не больше %d\n", maxExams)
			continue
		}

		if count > minExams {
			ok, err := readYesNo(in, out, fmt.Sprintf("Больше %d экзаменов, продолжить? (да/нет): ", minExams))
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
		}

		return count, nil
	}
}
