package gdrive

import (
	"bytes"
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"gdrivekit/pkg/interfaces"
)

// updateRecord captures one UpdateFile request.
type updateRecord struct {
	id   string
	file *drive.File
	call interfaces.UpdateCall
}

// copyRecord captures one CopyFile request.
type copyRecord struct {
	id   string
	file *drive.File
}

// fakeAPI is an in-memory interfaces.DriveAPI that records outgoing requests
// and replays canned responses.
type fakeAPI struct {
	files map[string]*drive.File // GetFile responses by ID
	pages []interfaces.ListPage  // consumed in order by ListFiles

	getCalls  []string
	listCalls []interfaces.ListCall
	updates   []updateRecord
	copies    []copyRecord
	deleted   []string
	created   []*drive.File

	getErr    error
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	copyErr   error

	createResult *drive.File
	updateResult *drive.File
	copyResult   *drive.File

	emptiedTrash bool

	downloadContent string
	downloadErr     error
	downloadedIDs   []string

	exportContent string
	exportErr     error
	exportedIDs   []string
	exportedMimes []string

	uploadResult   *drive.File
	uploadErr      error
	uploadedMedia  []byte
	uploadedMeta   *drive.File
	uploadedCtype  string
	mediaUpdateIDs []string
}

var _ interfaces.DriveAPI = (*fakeAPI)(nil)

func (f *fakeAPI) GetFile(_ context.Context, fileID, _ string) (*drive.File, error) {
	f.getCalls = append(f.getCalls, fileID)
	if f.getErr != nil {
		return nil, f.getErr
	}

	if file, ok := f.files[fileID]; ok {
		return file, nil
	}

	return nil, &googleapi.Error{Code: 404, Message: "not found"}
}

func (f *fakeAPI) ListFiles(_ context.Context, call interfaces.ListCall) (*interfaces.ListPage, error) {
	f.listCalls = append(f.listCalls, call)
	if f.listErr != nil {
		return nil, f.listErr
	}

	if len(f.pages) == 0 {
		return &interfaces.ListPage{}, nil
	}

	page := f.pages[0]
	f.pages = f.pages[1:]

	return &page, nil
}

func (f *fakeAPI) CreateFile(_ context.Context, file *drive.File, _ string) (*drive.File, error) {
	f.created = append(f.created, file)
	if f.createErr != nil {
		return nil, f.createErr
	}

	if f.createResult != nil {
		return f.createResult, nil
	}

	return &drive.File{Id: "created-id"}, nil
}

func (f *fakeAPI) UpdateFile(_ context.Context, fileID string, file *drive.File, call interfaces.UpdateCall) (*drive.File, error) {
	f.updates = append(f.updates, updateRecord{id: fileID, file: file, call: call})
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	return f.updateResult, nil
}

func (f *fakeAPI) DeleteFile(_ context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)

	return f.deleteErr
}

func (f *fakeAPI) CopyFile(_ context.Context, fileID string, file *drive.File, _ string) (*drive.File, error) {
	f.copies = append(f.copies, copyRecord{id: fileID, file: file})
	if f.copyErr != nil {
		return nil, f.copyErr
	}

	return f.copyResult, nil
}

func (f *fakeAPI) EmptyTrash(_ context.Context) error {
	f.emptiedTrash = true

	return nil
}

func (f *fakeAPI) DownloadFile(_ context.Context, fileID string) (io.ReadCloser, error) {
	f.downloadedIDs = append(f.downloadedIDs, fileID)
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}

	return io.NopCloser(bytes.NewReader([]byte(f.downloadContent))), nil
}

func (f *fakeAPI) ExportFile(_ context.Context, fileID, exportMimeType string) (io.ReadCloser, error) {
	f.exportedIDs = append(f.exportedIDs, fileID)
	f.exportedMimes = append(f.exportedMimes, exportMimeType)

	if f.exportErr != nil {
		return nil, f.exportErr
	}

	return io.NopCloser(bytes.NewReader([]byte(f.exportContent))), nil
}

func (f *fakeAPI) UploadFile(_ context.Context, file *drive.File, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error) {
	f.uploadedMeta = file
	f.uploadedCtype = contentType

	data, err := io.ReadAll(media)
	if err != nil {
		return nil, err
	}

	f.uploadedMedia = data

	if progress != nil {
		progress(int64(len(data)), int64(len(data)))
	}

	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	return f.uploadResult, nil
}

func (f *fakeAPI) UpdateFileMedia(_ context.Context, fileID string, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error) {
	f.mediaUpdateIDs = append(f.mediaUpdateIDs, fileID)
	f.uploadedCtype = contentType

	data, err := io.ReadAll(media)
	if err != nil {
		return nil, err
	}

	f.uploadedMedia = data

	if progress != nil {
		progress(int64(len(data)), int64(len(data)))
	}

	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	return f.uploadResult, nil
}
