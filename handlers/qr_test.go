package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalshehri/ExamControl/models"
)

func TestParseQRPayload(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    QRPayload
		wantErr error
	}{
		{
			name: "teacher",
			in:   `{"type":"teacher","no":"T-07","name":"أحمد السيد"}`,
			want: QRPayload{Type: "teacher", No: "T-07", Name: "أحمد السيد"},
		},
		{
			name: "committee",
			in:   `{"type":"committee","id":"3f1c","name":"لجنة 1A"}`,
			want: QRPayload{Type: "committee", ID: "3f1c", Name: "لجنة 1A"},
		},
		{
			name: "control handover",
			in:   `{"type":"control_handover"}`,
			want: QRPayload{Type: "control_handover"},
		},
		{name: "malformed json", in: `{"type":`, wantErr: errMalformedQR},
		{name: "not json at all", in: `hello`, wantErr: errMalformedQR},
		{name: "unknown type", in: `{"type":"student"}`, wantErr: errUnknownQR},
		{name: "missing type", in: `{"no":"T-07"}`, wantErr: errUnknownQR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQRPayload(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRPayloadRoundTrip(t *testing.T) {
	tch := models.Teacher{TeacherNo: "T-12", FullName: "خالد الأحمدي"}
	p, err := ParseQRPayload(TeacherQRPayload(tch))
	require.NoError(t, err)
	assert.Equal(t, QRTypeTeacher, p.Type)
	assert.Equal(t, "T-12", p.No)
	assert.Equal(t, "خالد الأحمدي", p.Name)

	cm := models.Committee{ID: "c-9", Name: "لجنة 2B"}
	p, err = ParseQRPayload(CommitteeQRPayload(cm))
	require.NoError(t, err)
	assert.Equal(t, QRTypeCommittee, p.Type)
	assert.Equal(t, "c-9", p.ID)

	p, err = ParseQRPayload(ControlHandoverQRPayload())
	require.NoError(t, err)
	assert.Equal(t, QRTypeControlHandover, p.Type)
}
