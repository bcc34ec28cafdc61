package gdrive

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"gdrivekit/pkg/interfaces"
)

// googleAPI adapts *drive.Service to the interfaces.DriveAPI capability
// surface. Each method maps to exactly one request; retry, backoff, and
// token refresh belong to the underlying client.
type googleAPI struct {
	svc *drive.Service
}

// NewDriveAPI wraps a connected Drive service.
func NewDriveAPI(svc *drive.Service) interfaces.DriveAPI {
	return &googleAPI{svc: svc}
}

var _ interfaces.DriveAPI = (*googleAPI)(nil)

func (g *googleAPI) GetFile(ctx context.Context, fileID, fields string) (*drive.File, error) {
	call := g.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx)
	if fields != "" {
		call = call.Fields(googleapi.Field(fields))
	}

	return call.Do()
}

func (g *googleAPI) ListFiles(ctx context.Context, lc interfaces.ListCall) (*interfaces.ListPage, error) {
	call := g.svc.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(lc.Query).
		PageSize(lc.PageSize).
		Context(ctx)

	if lc.Fields != "" {
		call = call.Fields(googleapi.Field(lc.Fields))
	}

	if lc.PageToken != "" {
		call = call.PageToken(lc.PageToken)
	}

	res, err := call.Do()
	if err != nil {
		return nil, err
	}

	return &interfaces.ListPage{Files: res.Files, NextPageToken: res.NextPageToken}, nil
}

func (g *googleAPI) CreateFile(ctx context.Context, file *drive.File, fields string) (*drive.File, error) {
	call := g.svc.Files.Create(file).SupportsAllDrives(true).Context(ctx)
	if fields != "" {
		call = call.Fields(googleapi.Field(fields))
	}

	return call.Do()
}

func (g *googleAPI) UpdateFile(ctx context.Context, fileID string, file *drive.File, uc interfaces.UpdateCall) (*drive.File, error) {
	call := g.svc.Files.Update(fileID, file).SupportsAllDrives(true).Context(ctx)

	if uc.AddParents != "" {
		call = call.AddParents(uc.AddParents)
	}

	if uc.RemoveParents != "" {
		call = call.RemoveParents(uc.RemoveParents)
	}

	if uc.Fields != "" {
		call = call.Fields(googleapi.Field(uc.Fields))
	}

	return call.Do()
}

func (g *googleAPI) DeleteFile(ctx context.Context, fileID string) error {
	return g.svc.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
}

func (g *googleAPI) CopyFile(ctx context.Context, fileID string, file *drive.File, fields string) (*drive.File, error) {
	call := g.svc.Files.Copy(fileID, file).SupportsAllDrives(true).Context(ctx)
	if fields != "" {
		call = call.Fields(googleapi.Field(fields))
	}

	return call.Do()
}

func (g *googleAPI) EmptyTrash(ctx context.Context) error {
	return g.svc.Files.EmptyTrash().Context(ctx).Do()
}

func (g *googleAPI) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := g.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

func (g *googleAPI) ExportFile(ctx context.Context, fileID, exportMimeType string) (io.ReadCloser, error) {
	resp, err := g.svc.Files.Export(fileID, exportMimeType).Context(ctx).Download()
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

func (g *googleAPI) UploadFile(ctx context.Context, file *drive.File, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error) {
	call := g.svc.Files.Create(file).
		SupportsAllDrives(true).
		Media(media, googleapi.ContentType(contentType), googleapi.ChunkSize(googleapi.DefaultUploadChunkSize)).
		Fields("id,name,mimeType,parents").
		Context(ctx)

	if progress != nil {
		call = call.ProgressUpdater(progress)
	}

	return call.Do()
}

func (g *googleAPI) UpdateFileMedia(ctx context.Context, fileID string, media io.Reader, contentType string, progress googleapi.ProgressUpdater) (*drive.File, error) {
	call := g.svc.Files.Update(fileID, &drive.File{}).
		SupportsAllDrives(true).
		Media(media, googleapi.ContentType(contentType), googleapi.ChunkSize(googleapi.DefaultUploadChunkSize)).
		Fields("id").
		Context(ctx)

	if progress != nil {
		call = call.ProgressUpdater(progress)
	}

	return call.Do()
}
