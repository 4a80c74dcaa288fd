/*
Package fpocket provides a convenient wrapper for running fpocketR, the
pocket-detection pipeline, inside its conda environment.

The conda executable is located automatically: $CONDA_EXE is tried first,
then $PATH, then a handful of common install locations. If this behavior is
not desired, set the Conda field of a Config to the executable's path.

Note that a full wrapper for every fpocketR option is not provided. Options
can be added on an as-needed basis.
*/
package fpocket
