package testutil

// FakeFormRunner is a scripted prompt.FormRunner for tests.
type FakeFormRunner struct {
	// Choice is returned by RunRecordSelect. An empty Choice picks the first record.
	Choice string
	// Confirm is returned by RunConfirm.
	Confirm bool
	// Err is returned by every method when set.
	Err error

	// Offered records the records passed to each RunRecordSelect call.
	Offered [][]string
	// Messages records the messages passed to RunConfirm, in order.
	Messages []string
}

// RunRecordSelect records the offered records and returns the scripted choice.
func (f *FakeFormRunner) RunRecordSelect(records []string) (string, error) {
	f.Offered = append(f.Offered, records)
	if f.Err != nil {
		return "", f.Err
	}
	if f.Choice == "" && len(records) > 0 {
		return records[0], nil
	}
	return f.Choice, nil
}

// RunConfirm records the message and returns the scripted answer.
func (f *FakeFormRunner) RunConfirm(message string) (bool, error) {
	f.Messages = append(f.Messages, message)
	if f.Err != nil {
		return false, f.Err
	}
	return f.Confirm, nil
}
